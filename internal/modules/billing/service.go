package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"karaoke/internal/domain"
	"karaoke/internal/pkg/lock"
	"karaoke/internal/pkg/money"
	"karaoke/internal/repository"
)

type Service struct {
	bills        BillRepository
	sessions     SessionRepository
	orders       OrderRepository
	sessionLocks *lock.Keyed
	hourlyRate   decimal.Decimal
	discount     DiscountPolicy
	log          *zap.Logger
}

func NewService(bills BillRepository, sessions SessionRepository, orders OrderRepository, hourlyRate decimal.Decimal, discount DiscountPolicy, log *zap.Logger) *Service {
	if discount == nil {
		discount = NoDiscount
	}
	return &Service{
		bills:        bills,
		sessions:     sessions,
		orders:       orders,
		sessionLocks: lock.NewKeyed(),
		hourlyRate:   hourlyRate,
		discount:     discount,
		log:          log.With(zap.String("service", "billing")),
	}
}

// GetOrCreateBill returns the session's bill, computing and persisting it
// on first request. The persisted record is the permanent answer: orders
// placed or cancelled after billing never change it. The existence check
// and the insert run under the session's lock.
func (s *Service) GetOrCreateBill(ctx context.Context, sessionID string) (*domain.Bill, error) {
	s.sessionLocks.Lock(sessionID)
	defer s.sessionLocks.Unlock(sessionID)

	bill, err := s.bills.GetBySessionID(ctx, sessionID)
	if err == nil {
		return bill, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load bill: %w", err)
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Status != domain.SessionClosed || sess.EndTime == nil {
		return nil, ErrSessionNotClosed
	}

	roomCharge := money.TimeCharge(sess.StartTime, *sess.EndTime, s.hourlyRate)

	orders, err := s.orders.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session orders: %w", err)
	}
	ordersTotal := decimal.Zero
	for i := range orders {
		if orders[i].Status == domain.OrderCancelled {
			continue
		}
		ordersTotal = ordersTotal.Add(orders[i].Total)
	}
	ordersTotal = money.Round(ordersTotal)

	discount := money.Round(s.discount(roomCharge, ordersTotal))
	total := money.Round(roomCharge.Add(ordersTotal).Sub(discount))

	bill = &domain.Bill{
		SessionID:   sessionID,
		RoomCharge:  roomCharge,
		OrdersTotal: ordersTotal,
		Discount:    discount,
		Total:       total,
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("create bill: %w", err)
	}

	s.log.Info("bill computed",
		zap.String("bill_id", bill.ID),
		zap.String("session_id", sessionID),
		zap.String("room_charge", roomCharge.String()),
		zap.String("orders_total", ordersTotal.String()),
		zap.String("total", total.String()),
	)

	return bill, nil
}

func (s *Service) GetBill(ctx context.Context, id string) (*domain.Bill, error) {
	bill, err := s.bills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return bill, nil
}

// PayBill marks the bill PAID. The transition is unconditional, so paying
// an already paid bill is an accepted no-op.
func (s *Service) PayBill(ctx context.Context, id string) (*domain.Bill, error) {
	if _, err := s.GetBill(ctx, id); err != nil {
		return nil, err
	}
	if err := s.bills.MarkPaid(ctx, id); err != nil {
		return nil, fmt.Errorf("mark bill paid: %w", err)
	}

	s.log.Info("bill paid", zap.String("bill_id", id))

	return s.bills.GetByID(ctx, id)
}
