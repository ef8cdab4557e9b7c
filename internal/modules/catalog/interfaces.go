package catalog

import (
	"context"

	"karaoke/internal/domain"
)

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
}

type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
}

type BookingRepository interface {
	ListActiveByRoom(ctx context.Context, roomID string) ([]domain.Booking, error)
}
