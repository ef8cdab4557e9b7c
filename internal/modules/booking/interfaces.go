package booking

import (
	"context"

	"karaoke/internal/domain"
)

// BookingRepository is the slice of the store the admission controller needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListActiveByRoom(ctx context.Context, roomID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) (bool, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}
