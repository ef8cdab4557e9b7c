package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionActive SessionStatus = "ACTIVE"
	SessionClosed SessionStatus = "CLOSED"
)

// Session is a live room visit. EndTime is set exactly when the session
// transitions to CLOSED, which happens at most once.
type Session struct {
	ID        string        `json:"sessionId" gorm:"primaryKey;type:varchar(36)"`
	RoomID    string        `json:"roomId" gorm:"index;type:varchar(36)" validate:"required"`
	BookingID *string       `json:"bookingId,omitempty" gorm:"type:varchar(36)"`
	StartTime time.Time     `json:"startTime"`
	EndTime   *time.Time    `json:"endTime,omitempty"`
	Status    SessionStatus `json:"status" gorm:"index"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = SessionActive
	}
	if s.StartTime.IsZero() {
		s.StartTime = time.Now().UTC()
	}
	return nil
}

// SongEntry is an append-only queue row. Position is 1-based and monotonic
// per session; it is never reused.
type SongEntry struct {
	ID        string    `json:"entryId" gorm:"primaryKey;type:varchar(36)"`
	SessionID string    `json:"sessionId" gorm:"index;type:varchar(36)"`
	SongID    string    `json:"songId" validate:"required"`
	Position  int       `json:"position"`
	AddedBy   string    `json:"addedBy"`
	AddedAt   time.Time `json:"addedAt"`
}

func (e *SongEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.AddedAt.IsZero() {
		e.AddedAt = time.Now().UTC()
	}
	return nil
}
