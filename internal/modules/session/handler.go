package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"karaoke/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.OpenSession)
	rg.GET("/sessions/:id", h.GetSession)
	rg.POST("/sessions/:id/close", h.CloseSession)
	rg.POST("/sessions/:id/songs", h.AddSong)
	rg.GET("/sessions/:id/songs", h.ListSongs)
	rg.GET("/sessions/:id/queue/ws", h.QueueFeed)
}

func (h *Handler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.OpenSession(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to open session")
		return
	}

	response.Success(c, http.StatusCreated, sess)
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load session")
		return
	}
	response.Success(c, http.StatusOK, sess)
}

func (h *Handler) CloseSession(c *gin.Context) {
	sess, err := h.service.CloseSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to close session")
		return
	}
	response.Success(c, http.StatusOK, sess)
}

func (h *Handler) AddSong(c *gin.Context) {
	var req AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	entry, err := h.service.AddSong(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to queue song")
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

func (h *Handler) ListSongs(c *gin.Context) {
	entries, err := h.service.ListSongs(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to list songs")
		return
	}
	response.Success(c, http.StatusOK, entries)
}

// QueueFeed upgrades to a websocket and streams song entries as they are
// accepted. The feed is one-way; client frames are discarded.
func (h *Handler) QueueFeed(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.service.GetSession(c.Request.Context(), sessionID); err != nil {
		h.writeError(c, err, "Failed to load session")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(sessionID, conn)

	go func() {
		defer h.hub.Unregister(sessionID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrSessionNotFound:
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
	case ErrSessionNotActive:
		response.Error(c, http.StatusConflict, "SESSION_NOT_ACTIVE", "Session is not active")
	case ErrRoomNotFound:
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
