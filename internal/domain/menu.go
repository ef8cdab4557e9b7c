package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuCategory string

const (
	MenuFood  MenuCategory = "FOOD"
	MenuDrink MenuCategory = "DRINK"
)

// MenuItem is a static catalog entry. Orders snapshot its price, so later
// catalog price changes never touch existing orders.
type MenuItem struct {
	ID        string          `json:"menuItemId" gorm:"primaryKey;type:varchar(36)"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(20,2)" validate:"required"`
	Category  MenuCategory    `json:"type" gorm:"column:category"`
	CreatedAt time.Time       `json:"created_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
