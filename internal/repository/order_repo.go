package repository

import (
	"context"

	"gorm.io/gorm"

	"karaoke/internal/domain"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order together with its line items.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	tx := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &o, nil
}

func (r *OrderRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	var orders []domain.Order
	tx := r.db.WithContext(ctx).
		Preload("Items").
		Where("session_id = ?", sessionID).
		Order("created_at, id").
		Find(&orders)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return orders, nil
}

// UpdateStatus transitions an order out of any of the given statuses.
// It reports false when the order was not in an eligible status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
