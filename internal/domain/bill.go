package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillStatus string

const (
	BillOpen BillStatus = "OPEN"
	BillPaid BillStatus = "PAID"
)

// Bill is the single billing record of a closed session. The first
// computation is persisted and becomes the permanent answer; SessionID
// carries a unique index to hold the one-bill-per-session invariant in
// the store itself.
type Bill struct {
	ID          string          `json:"billId" gorm:"primaryKey;type:varchar(36)"`
	SessionID   string          `json:"sessionId" gorm:"uniqueIndex;type:varchar(36)"`
	RoomCharge  decimal.Decimal `json:"roomCharge" gorm:"type:decimal(20,2)"`
	OrdersTotal decimal.Decimal `json:"ordersTotal" gorm:"type:decimal(20,2)"`
	Discount    decimal.Decimal `json:"discount" gorm:"type:decimal(20,2)"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(20,2)"`
	Status      BillStatus      `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = BillOpen
	}
	return nil
}
