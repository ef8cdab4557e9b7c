package catalog

import (
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/availability", h.FindAvailableRooms)
	rg.GET("/menu", h.ListMenu)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.service.ListMenu(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list menu")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) FindAvailableRooms(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("startTime"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startTime must be RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("endTime"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endTime must be RFC3339")
		return
	}
	partySize, err := strconv.Atoi(c.DefaultQuery("partySize", "1"))
	if err != nil || partySize <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "partySize must be a positive integer")
		return
	}

	rooms, err := h.service.FindAvailableRooms(c.Request.Context(), start, end, partySize)
	if err != nil {
		switch err {
		case ErrInvalidWindow:
			response.Error(c, http.StatusBadRequest, "INVALID_WINDOW", "endTime must be after startTime")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve availability")
		}
		return
	}

	response.Success(c, http.StatusOK, rooms)
}
