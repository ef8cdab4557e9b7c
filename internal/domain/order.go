package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderCreated   OrderStatus = "CREATED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID        string      `json:"orderId" gorm:"primaryKey;type:varchar(36)"`
	SessionID string      `json:"sessionId" gorm:"index;type:varchar(36)"`
	Status    OrderStatus `json:"status" gorm:"index"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	// Total is fixed at creation from the snapshot prices below.
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(20,2)"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = OrderCreated
	}
	return nil
}

// OrderItem freezes the catalog price at order time.
type OrderItem struct {
	ID         string          `json:"-" gorm:"primaryKey;type:varchar(36)"`
	OrderID    string          `json:"-" gorm:"index;type:varchar(36)"`
	MenuItemID string          `json:"menuItemId" gorm:"type:varchar(36)"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(20,2)"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
