package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"karaoke/internal/domain"
	"karaoke/internal/repository"
)

type Service struct {
	sessions SessionRepository
	rooms    RoomRepository
	bookings BookingRepository
	hub      *Hub
	log      *zap.Logger
}

func NewService(sessions SessionRepository, rooms RoomRepository, bookings BookingRepository, hub *Hub, log *zap.Logger) *Service {
	return &Service{
		sessions: sessions,
		rooms:    rooms,
		bookings: bookings,
		hub:      hub,
		log:      log.With(zap.String("service", "session")),
	}
}

// OpenSession starts an ACTIVE session for a room, optionally linked to a
// booking. The song queue starts empty.
func (s *Service) OpenSession(ctx context.Context, req OpenSessionRequest) (*domain.Session, error) {
	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room: %w", err)
	}
	if req.BookingID != nil {
		if _, err := s.bookings.GetByID(ctx, *req.BookingID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, fmt.Errorf("load booking: %w", err)
		}
	}

	sess := &domain.Session{
		RoomID:    req.RoomID,
		BookingID: req.BookingID,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("session opened", zap.String("session_id", sess.ID), zap.String("room_id", sess.RoomID))

	return sess, nil
}

func (s *Service) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

// CloseSession transitions ACTIVE -> CLOSED once. Closing again surfaces
// ErrSessionNotActive and leaves the record untouched.
func (s *Service) CloseSession(ctx context.Context, id string) (*domain.Session, error) {
	if _, err := s.GetSession(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.sessions.Close(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}
	if !ok {
		return nil, ErrSessionNotActive
	}

	s.log.Info("session closed", zap.String("session_id", id))
	s.hub.CloseSession(id)

	return s.sessions.GetByID(ctx, id)
}

// AddSong appends to the session queue. Only ACTIVE sessions accept songs;
// the position is assigned by the store so it stays monotonic.
func (s *Service) AddSong(ctx context.Context, sessionID string, req AddSongRequest) (*domain.SongEntry, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != domain.SessionActive {
		return nil, ErrSessionNotActive
	}

	entry := &domain.SongEntry{
		SessionID: sessionID,
		SongID:    req.SongID,
		AddedBy:   req.AddedBy,
	}
	if err := s.sessions.AppendSong(ctx, entry); err != nil {
		return nil, fmt.Errorf("append song: %w", err)
	}

	s.log.Info("song queued",
		zap.String("session_id", sessionID),
		zap.String("song_id", entry.SongID),
		zap.Int("position", entry.Position),
	)
	s.hub.Broadcast(sessionID, entry)

	return entry, nil
}

func (s *Service) ListSongs(ctx context.Context, sessionID string) ([]domain.SongEntry, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.sessions.ListSongs(ctx, sessionID)
}
