package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"karaoke/internal/domain"
	"karaoke/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/orders", h.CreateOrder)
	rg.GET("/orders/:id", h.GetOrder)
	rg.POST("/orders/:id/cancel", h.CancelOrder)
	rg.POST("/orders/:id/status", h.UpdateStatus)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.CreateOrder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create order")
		return
	}

	response.Success(c, http.StatusCreated, o)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load order")
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	o, err := h.service.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to cancel order")
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.AdvanceStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		h.writeError(c, err, "Failed to update order")
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
	case errors.Is(err, ErrSessionNotActive):
		response.Error(c, http.StatusConflict, "SESSION_NOT_ACTIVE", "Session is not active")
	case errors.Is(err, ErrMenuItemNotFound):
		response.Error(c, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", err.Error())
	case errors.Is(err, ErrInvalidQuantity):
		response.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", "quantity must be > 0")
	case errors.Is(err, ErrOrderNotFound):
		response.Error(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "ORDER_STATUS_CONFLICT", "Order status does not allow this transition")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
