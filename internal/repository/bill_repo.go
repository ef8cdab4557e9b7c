package repository

import (
	"context"

	"gorm.io/gorm"

	"karaoke/internal/domain"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) Create(ctx context.Context, b *domain.Bill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BillRepository) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	var b domain.Bill
	tx := r.db.WithContext(ctx).First(&b, "id = ?", id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &b, nil
}

func (r *BillRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Bill, error) {
	var b domain.Bill
	tx := r.db.WithContext(ctx).First(&b, "session_id = ?", sessionID)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &b, nil
}

// MarkPaid sets the bill PAID. Paying an already paid bill is a no-op.
func (r *BillRepository) MarkPaid(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Bill{}).
		Where("id = ?", id).
		Update("status", domain.BillPaid).Error
}
