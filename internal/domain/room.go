package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomFree     RoomStatus = "FREE"
	RoomReserved RoomStatus = "RESERVED"
	RoomOccupied RoomStatus = "OCCUPIED"
)

// Room is a catalog entry. Status is informational only: availability is
// derived from booking overlap, never from this flag.
type Room struct {
	ID        string     `json:"roomId" gorm:"primaryKey;type:varchar(36)"`
	Name      string     `json:"name" validate:"required"`
	Capacity  int        `json:"capacity" validate:"required,gt=0"`
	Status    RoomStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = RoomFree
	}
	return nil
}
