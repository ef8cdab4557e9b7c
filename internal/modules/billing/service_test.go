package billing

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"karaoke/internal/domain"
	"karaoke/internal/repository"
)

type fakeBillStore struct {
	mu     sync.Mutex
	nextID int
	bills  map[string]*domain.Bill
}

func newFakeBillStore() *fakeBillStore {
	return &fakeBillStore{bills: make(map[string]*domain.Bill)}
}

func (f *fakeBillStore) Create(ctx context.Context, b *domain.Bill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	b.ID = fmt.Sprintf("bill-%d", f.nextID)
	b.Status = domain.BillOpen
	copied := *b
	f.bills[b.ID] = &copied
	return nil
}

func (f *fakeBillStore) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBillStore) GetBySessionID(ctx context.Context, sessionID string) (*domain.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bills {
		if b.SessionID == sessionID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBillStore) MarkPaid(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bills[id]; ok {
		b.Status = domain.BillPaid
	}
	return nil
}

type fakeSessionStore struct {
	sessions map[string]*domain.Session
}

func (f fakeSessionStore) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (f *fakeOrderStore) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) add(o domain.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, o)
}

func closedSession(id string, hours float64) *domain.Session {
	start := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return &domain.Session{
		ID: id, RoomID: "room-1",
		StartTime: start, EndTime: &end,
		Status: domain.SessionClosed,
	}
}

func newTestService(sessions fakeSessionStore, orders *fakeOrderStore) (*Service, *fakeBillStore) {
	bills := newFakeBillStore()
	service := NewService(bills, sessions, orders, decimal.NewFromInt(1000), NoDiscount, zap.NewNop())
	return service, bills
}

func TestService_GetOrCreateBill_RoomChargeOnly(t *testing.T) {
	sessions := fakeSessionStore{sessions: map[string]*domain.Session{
		"session-1": closedSession("session-1", 2.0),
	}}
	service, _ := newTestService(sessions, &fakeOrderStore{})

	bill, err := service.GetOrCreateBill(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Equal(t, "2000", bill.RoomCharge.String())
	assert.Equal(t, "0", bill.OrdersTotal.String())
	assert.Equal(t, "0", bill.Discount.String())
	assert.Equal(t, "2000", bill.Total.String())
	assert.Equal(t, domain.BillOpen, bill.Status)
}

func TestService_GetOrCreateBill_IncludesOrdersExcludesCancelled(t *testing.T) {
	sessions := fakeSessionStore{sessions: map[string]*domain.Session{
		"session-1": closedSession("session-1", 2.0),
	}}
	orders := &fakeOrderStore{}
	orders.add(domain.Order{ID: "order-1", SessionID: "session-1", Status: domain.OrderDelivered, Total: decimal.NewFromInt(1200)})
	orders.add(domain.Order{ID: "order-2", SessionID: "session-1", Status: domain.OrderCancelled, Total: decimal.NewFromInt(700)})

	service, _ := newTestService(sessions, orders)

	bill, err := service.GetOrCreateBill(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Equal(t, "1200", bill.OrdersTotal.String())
	assert.Equal(t, "3200", bill.Total.String())
}

func TestService_GetOrCreateBill_Idempotent(t *testing.T) {
	sessions := fakeSessionStore{sessions: map[string]*domain.Session{
		"session-1": closedSession("session-1", 1.5),
	}}
	orders := &fakeOrderStore{}
	service, _ := newTestService(sessions, orders)

	first, err := service.GetOrCreateBill(context.Background(), "session-1")
	require.NoError(t, err)

	// an order landing after billing must not change the answer
	orders.add(domain.Order{ID: "order-9", SessionID: "session-1", Status: domain.OrderCreated, Total: decimal.NewFromInt(500)})

	second, err := service.GetOrCreateBill(context.Background(), "session-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.OrdersTotal.Equal(second.OrdersTotal))
}

func TestService_GetOrCreateBill_SessionMustBeClosed(t *testing.T) {
	start := time.Now().UTC()
	sessions := fakeSessionStore{sessions: map[string]*domain.Session{
		"session-1": {ID: "session-1", RoomID: "room-1", StartTime: start, Status: domain.SessionActive},
	}}
	service, _ := newTestService(sessions, &fakeOrderStore{})

	_, err := service.GetOrCreateBill(context.Background(), "session-1")
	assert.ErrorIs(t, err, ErrSessionNotClosed)

	_, err = service.GetOrCreateBill(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_GetOrCreateBill_DiscountPolicy(t *testing.T) {
	sessions := fakeSessionStore{sessions: map[string]*domain.Session{
		"session-1": closedSession("session-1", 2.0),
	}}
	bills := newFakeBillStore()

	halfOffRoom := func(roomCharge, ordersTotal decimal.Decimal) decimal.Decimal {
		return roomCharge.Div(decimal.NewFromInt(2))
	}
	service := NewService(bills, sessions, &fakeOrderStore{}, decimal.NewFromInt(1000), halfOffRoom, zap.NewNop())

	bill, err := service.GetOrCreateBill(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Equal(t, "1000", bill.Discount.String())
	assert.Equal(t, "1000", bill.Total.String())
}

func TestService_PayBill_Idempotent(t *testing.T) {
	sessions := fakeSessionStore{sessions: map[string]*domain.Session{
		"session-1": closedSession("session-1", 1.0),
	}}
	service, _ := newTestService(sessions, &fakeOrderStore{})

	bill, err := service.GetOrCreateBill(context.Background(), "session-1")
	require.NoError(t, err)

	paid, err := service.PayBill(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BillPaid, paid.Status)

	// paying again is a no-op
	paidAgain, err := service.PayBill(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BillPaid, paidAgain.Status)
}

func TestService_PayBill_NotFound(t *testing.T) {
	service, _ := newTestService(fakeSessionStore{sessions: map[string]*domain.Session{}}, &fakeOrderStore{})

	_, err := service.PayBill(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBillNotFound)
}
