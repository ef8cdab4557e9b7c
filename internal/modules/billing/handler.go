package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"karaoke/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sessions/:id/bill", h.GetSessionBill)
	rg.GET("/bills/:id", h.GetBill)
	rg.POST("/bills/:id/pay", h.PayBill)
}

func (h *Handler) GetSessionBill(c *gin.Context) {
	bill, err := h.service.GetOrCreateBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to compute bill")
		return
	}
	response.Success(c, http.StatusOK, bill)
}

func (h *Handler) GetBill(c *gin.Context) {
	bill, err := h.service.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load bill")
		return
	}
	response.Success(c, http.StatusOK, bill)
}

func (h *Handler) PayBill(c *gin.Context) {
	bill, err := h.service.PayBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to pay bill")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"billId": bill.ID,
		"status": bill.Status,
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrSessionNotFound:
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
	case ErrSessionNotClosed:
		response.Error(c, http.StatusBadRequest, "SESSION_NOT_CLOSED", "Session must be closed to calculate bill")
	case ErrBillNotFound:
		response.Error(c, http.StatusNotFound, "BILL_NOT_FOUND", "Bill not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
