package order

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionNotActive  = errors.New("session is not active")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrInvalidQuantity   = errors.New("quantity must be > 0")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order status does not allow this transition")
)
