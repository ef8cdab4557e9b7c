package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"karaoke/internal/domain"
	"karaoke/internal/pkg/money"
	"karaoke/internal/repository"
)

type Service struct {
	orders   OrderRepository
	sessions SessionRepository
	menu     MenuRepository
	log      *zap.Logger
}

func NewService(orders OrderRepository, sessions SessionRepository, menu MenuRepository, log *zap.Logger) *Service {
	return &Service{
		orders:   orders,
		sessions: sessions,
		menu:     menu,
		log:      log.With(zap.String("service", "order")),
	}
}

// CreateOrder prices the requested lines against the menu catalog and
// persists the order with the prices frozen in. Validation is per line and
// the first invalid line aborts the whole order.
func (s *Service) CreateOrder(ctx context.Context, sessionID string, req CreateOrderRequest) (*domain.Order, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Status != domain.SessionActive {
		return nil, ErrSessionNotActive
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, line := range req.Items {
		item, err := s.menu.GetByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrMenuItemNotFound, line.MenuItemID)
			}
			return nil, fmt.Errorf("load menu item: %w", err)
		}
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		items = append(items, domain.OrderItem{
			MenuItemID: item.ID,
			Quantity:   line.Quantity,
			Price:      item.Price,
		})
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	o := &domain.Order{
		SessionID: sessionID,
		Items:     items,
		Total:     money.Round(total),
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("session_id", sessionID),
		zap.Int("lines", len(items)),
		zap.String("total", o.Total.String()),
	)

	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// CancelOrder drops the order from future bill computations. Delivered and
// already cancelled orders stay as they are.
func (s *Service) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id,
		[]domain.OrderStatus{domain.OrderCreated, domain.OrderPreparing},
		domain.OrderCancelled)
}

// AdvanceStatus moves an order along the kitchen flow:
// CREATED -> PREPARING -> DELIVERED.
func (s *Service) AdvanceStatus(ctx context.Context, id string, to domain.OrderStatus) (*domain.Order, error) {
	var from []domain.OrderStatus
	switch to {
	case domain.OrderPreparing:
		from = []domain.OrderStatus{domain.OrderCreated}
	case domain.OrderDelivered:
		from = []domain.OrderStatus{domain.OrderPreparing}
	default:
		return nil, ErrInvalidTransition
	}
	return s.transition(ctx, id, from, to)
}

func (s *Service) transition(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus) (*domain.Order, error) {
	ok, err := s.orders.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if !ok {
		if _, err := s.orders.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	s.log.Info("order status changed", zap.String("order_id", id), zap.String("status", string(to)))

	return s.orders.GetByID(ctx, id)
}
