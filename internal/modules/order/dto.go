package order

type OrderLine struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	// Quantity is validated in the service so a zero value maps to
	// INVALID_QUANTITY rather than a generic binding failure.
	Quantity int `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []OrderLine `json:"items" binding:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
