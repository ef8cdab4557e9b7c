package session

import (
	"context"
	"time"

	"karaoke/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Close(ctx context.Context, id string, end time.Time) (bool, error)
	AppendSong(ctx context.Context, entry *domain.SongEntry) error
	ListSongs(ctx context.Context, sessionID string) ([]domain.SongEntry, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}
