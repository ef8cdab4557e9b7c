package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingCreated   BookingStatus = "CREATED"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking reserves a room for the half-open interval [StartTime, EndTime).
// Bookings are never deleted; cancellation is a status transition.
type Booking struct {
	ID             string          `json:"bookingId" gorm:"primaryKey;type:varchar(36)"`
	RoomID         string          `json:"roomId" gorm:"index;type:varchar(36)" validate:"required"`
	StartTime      time.Time       `json:"startTime" validate:"required"`
	EndTime        time.Time       `json:"endTime" validate:"required"`
	PartySize      int             `json:"partySize" validate:"required,gt=0"`
	Status         BookingStatus   `json:"status" gorm:"index"`
	CustomerName   string          `json:"customerName"`
	CustomerPhone  string          `json:"customerPhone"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice" gorm:"type:decimal(20,2)"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = BookingCreated
	}
	return nil
}
