package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"karaoke/internal/domain"
)

type BillRepository interface {
	Create(ctx context.Context, b *domain.Bill) error
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Bill, error)
	MarkPaid(ctx context.Context, id string) error
}

type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
}

type OrderRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error)
}

// DiscountPolicy computes the bill discount from the charges. The default
// policy grants nothing; promotions plug in here without reshaping the
// bill contract.
type DiscountPolicy func(roomCharge, ordersTotal decimal.Decimal) decimal.Decimal

func NoDiscount(roomCharge, ordersTotal decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}
