package booking

import "errors"

var (
	ErrInvalidWindow     = errors.New("endTime must be after startTime")
	ErrRoomNotFound      = errors.New("room not found")
	ErrCapacityExceeded  = errors.New("partySize exceeds room capacity")
	ErrSlotConflict      = errors.New("room is not available for this time slot")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)
