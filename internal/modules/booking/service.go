package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"karaoke/internal/domain"
	"karaoke/internal/pkg/lock"
	"karaoke/internal/pkg/money"
	"karaoke/internal/repository"
)

type Service struct {
	bookings   BookingRepository
	rooms      RoomRepository
	roomLocks  *lock.Keyed
	hourlyRate decimal.Decimal
	log        *zap.Logger
}

func NewService(bookings BookingRepository, rooms RoomRepository, hourlyRate decimal.Decimal, log *zap.Logger) *Service {
	return &Service{
		bookings:   bookings,
		rooms:      rooms,
		roomLocks:  lock.NewKeyed(),
		hourlyRate: hourlyRate,
		log:        log.With(zap.String("service", "booking")),
	}
}

// CreateBooking admits a booking or rejects it. Validation order is fixed:
// window, room existence, capacity, slot conflict. The conflict check and
// the insert run under the room's lock so two admissions for the same room
// cannot both pass the check.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidWindow
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room: %w", err)
	}
	if req.PartySize > room.Capacity {
		return nil, ErrCapacityExceeded
	}

	s.roomLocks.Lock(room.ID)
	defer s.roomLocks.Unlock(room.ID)

	existing, err := s.bookings.ListActiveByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("list room bookings: %w", err)
	}
	for i := range existing {
		if existing[i].OverlapsWindow(req.StartTime, req.EndTime) {
			return nil, ErrSlotConflict
		}
	}

	b := &domain.Booking{
		RoomID:         room.ID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		PartySize:      req.PartySize,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		EstimatedPrice: money.TimeCharge(req.StartTime, req.EndTime, s.hourlyRate),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking admitted",
		zap.String("booking_id", b.ID),
		zap.String("room_id", b.RoomID),
		zap.Time("start", b.StartTime),
		zap.Time("end", b.EndTime),
		zap.Int("party_size", b.PartySize),
	)

	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ConfirmBooking moves CREATED -> CONFIRMED.
func (s *Service) ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.transition(ctx, id, []domain.BookingStatus{domain.BookingCreated}, domain.BookingConfirmed)
}

// CancelBooking moves any non-cancelled booking to CANCELLED, which frees
// its slot for later admissions.
func (s *Service) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.transition(ctx, id,
		[]domain.BookingStatus{domain.BookingCreated, domain.BookingConfirmed},
		domain.BookingCancelled)
}

func (s *Service) transition(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) (*domain.Booking, error) {
	ok, err := s.bookings.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if !ok {
		if _, err := s.bookings.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	s.log.Info("booking status changed", zap.String("booking_id", id), zap.String("status", string(to)))

	return s.bookings.GetByID(ctx, id)
}
