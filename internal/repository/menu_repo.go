package repository

import (
	"context"

	"gorm.io/gorm"

	"karaoke/internal/domain"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	tx := r.db.WithContext(ctx).First(&item, "id = ?", id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &item, nil
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	tx := r.db.WithContext(ctx).Order("created_at, id").Find(&items)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return items, nil
}
