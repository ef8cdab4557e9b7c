package order

import (
	"context"

	"karaoke/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus) (bool, error)
}

type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
}

type MenuRepository interface {
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
}
