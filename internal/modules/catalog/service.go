package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"karaoke/internal/domain"
)

type Service struct {
	rooms    RoomRepository
	menu     MenuRepository
	bookings BookingRepository
	log      *zap.Logger
}

func NewService(rooms RoomRepository, menu MenuRepository, bookings BookingRepository, log *zap.Logger) *Service {
	return &Service{
		rooms:    rooms,
		menu:     menu,
		bookings: bookings,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.List(ctx)
}

// FindAvailableRooms filters the catalog to rooms that hold the party and
// have no non-cancelled booking overlapping [start, end). Read-only; the
// result order follows the catalog order.
func (s *Service) FindAvailableRooms(ctx context.Context, start, end time.Time, partySize int) ([]domain.Room, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	available := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Capacity < partySize {
			continue
		}

		bookings, err := s.bookings.ListActiveByRoom(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("list room bookings: %w", err)
		}

		busy := false
		for i := range bookings {
			if bookings[i].OverlapsWindow(start, end) {
				busy = true
				break
			}
		}
		if !busy {
			available = append(available, room)
		}
	}

	return available, nil
}
