package repository

import (
	"context"

	"gorm.io/gorm"

	"karaoke/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, "id = ?", id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &b, nil
}

// ListActiveByRoom returns every non-cancelled booking of a room; the
// admission conflict check and the availability resolver both run over it.
func (r *BookingRepository) ListActiveByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND status <> ?", roomID, domain.BookingCancelled).
		Order("start_time").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

// UpdateStatus transitions a booking out of any of the given statuses.
// It reports false when the booking was not in an eligible status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
