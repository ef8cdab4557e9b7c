package billing

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionNotClosed = errors.New("session must be closed to calculate bill")
	ErrBillNotFound     = errors.New("bill not found")
)
