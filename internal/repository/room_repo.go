package repository

import (
	"context"

	"gorm.io/gorm"

	"karaoke/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).First(&room, "id = ?", id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &room, nil
}

// List returns the catalog in creation order so availability results are
// stable for a given snapshot.
func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Order("created_at, id").Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}
