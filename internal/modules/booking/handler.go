package booking

import (
	"context"
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
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/confirm", h.ConfirmBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidWindow:
			response.Error(c, http.StatusBadRequest, "INVALID_WINDOW", "endTime must be after startTime")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case ErrCapacityExceeded:
			response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", "partySize exceeds room capacity")
		case ErrSlotConflict:
			response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "Room is not available for this time slot")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.service.ConfirmBooking)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	h.transition(c, h.service.CancelBooking)
}

func (h *Handler) transition(c *gin.Context, fn func(context.Context, string) (*domain.Booking, error)) {
	b, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "BOOKING_STATUS_CONFLICT", "Booking status does not allow this transition")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}
