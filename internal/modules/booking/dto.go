package booking

import "time"

type CreateBookingRequest struct {
	RoomID        string    `json:"roomId" binding:"required"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required"`
	PartySize     int       `json:"partySize" binding:"required,gt=0"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerPhone string    `json:"customerPhone" binding:"required"`
}
