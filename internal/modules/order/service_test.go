package order

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

type fakeOrderStore struct {
	mu     sync.Mutex
	nextID int
	orders map[string]*domain.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*domain.Order)}
}

func (f *fakeOrderStore) Create(ctx context.Context, o *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	o.ID = fmt.Sprintf("order-%d", f.nextID)
	o.Status = domain.OrderCreated
	copied := *o
	f.orders[o.ID] = &copied
	return nil
}

func (f *fakeOrderStore) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return false, nil
	}
	for _, s := range from {
		if o.Status == s {
			o.Status = to
			return true, nil
		}
	}
	return false, nil
}

type fakeSessionStore struct {
	status domain.SessionStatus
}

func (f fakeSessionStore) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if id != "session-1" {
		return nil, repository.ErrNotFound
	}
	return &domain.Session{ID: "session-1", RoomID: "room-1", Status: f.status, StartTime: time.Now().UTC()}, nil
}

// mutable menu so tests can change catalog prices after ordering
type fakeMenuStore struct {
	mu    sync.Mutex
	items map[string]domain.MenuItem
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{items: map[string]domain.MenuItem{
		"cola":  {ID: "cola", Name: "Cola 0.5", Price: decimal.NewFromInt(250), Category: domain.MenuDrink},
		"pizza": {ID: "pizza", Name: "Pizza", Price: decimal.NewFromInt(700), Category: domain.MenuFood},
	}}
}

func (f *fakeMenuStore) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (f *fakeMenuStore) setPrice(id string, price decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.items[id]
	item.Price = price
	f.items[id] = item
}

func TestService_CreateOrder_Total(t *testing.T) {
	orders := newFakeOrderStore()
	service := NewService(orders, fakeSessionStore{status: domain.SessionActive}, newFakeMenuStore(), zap.NewNop())

	o, err := service.CreateOrder(context.Background(), "session-1", CreateOrderRequest{
		Items: []OrderLine{
			{MenuItemID: "cola", Quantity: 2},
			{MenuItemID: "pizza", Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "1200", o.Total.String())
	assert.Len(t, o.Items, 2)
	assert.Equal(t, domain.OrderCreated, o.Status)
}

func TestService_CreateOrder_PriceFrozenAtOrderTime(t *testing.T) {
	orders := newFakeOrderStore()
	menu := newFakeMenuStore()
	service := NewService(orders, fakeSessionStore{status: domain.SessionActive}, menu, zap.NewNop())

	o, err := service.CreateOrder(context.Background(), "session-1", CreateOrderRequest{
		Items: []OrderLine{{MenuItemID: "cola", Quantity: 2}},
	})
	require.NoError(t, err)

	menu.setPrice("cola", decimal.NewFromInt(999))

	reloaded, err := service.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)

	recomputed := decimal.Zero
	for _, item := range reloaded.Items {
		recomputed = recomputed.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, reloaded.Total.Equal(recomputed))
	assert.Equal(t, "500", reloaded.Total.String())
}

func TestService_CreateOrder_UnknownMenuItemAbortsAll(t *testing.T) {
	orders := newFakeOrderStore()
	service := NewService(orders, fakeSessionStore{status: domain.SessionActive}, newFakeMenuStore(), zap.NewNop())

	_, err := service.CreateOrder(context.Background(), "session-1", CreateOrderRequest{
		Items: []OrderLine{
			{MenuItemID: "cola", Quantity: 1},
			{MenuItemID: "sushi", Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	assert.Empty(t, orders.orders)
}

func TestService_CreateOrder_InvalidQuantity(t *testing.T) {
	service := NewService(newFakeOrderStore(), fakeSessionStore{status: domain.SessionActive}, newFakeMenuStore(), zap.NewNop())

	_, err := service.CreateOrder(context.Background(), "session-1", CreateOrderRequest{
		Items: []OrderLine{{MenuItemID: "cola", Quantity: 0}},
	})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_CreateOrder_SessionGates(t *testing.T) {
	service := NewService(newFakeOrderStore(), fakeSessionStore{status: domain.SessionClosed}, newFakeMenuStore(), zap.NewNop())

	_, err := service.CreateOrder(context.Background(), "session-1", CreateOrderRequest{
		Items: []OrderLine{{MenuItemID: "cola", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrSessionNotActive)

	_, err = service.CreateOrder(context.Background(), "missing", CreateOrderRequest{
		Items: []OrderLine{{MenuItemID: "cola", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_CancelOrder(t *testing.T) {
	orders := newFakeOrderStore()
	service := NewService(orders, fakeSessionStore{status: domain.SessionActive}, newFakeMenuStore(), zap.NewNop())

	o, err := service.CreateOrder(context.Background(), "session-1", CreateOrderRequest{
		Items: []OrderLine{{MenuItemID: "cola", Quantity: 1}},
	})
	require.NoError(t, err)

	cancelled, err := service.CancelOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, cancelled.Status)

	// cancelling twice is rejected
	_, err = service.CancelOrder(context.Background(), o.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_AdvanceStatus_Flow(t *testing.T) {
	orders := newFakeOrderStore()
	service := NewService(orders, fakeSessionStore{status: domain.SessionActive}, newFakeMenuStore(), zap.NewNop())

	o, err := service.CreateOrder(context.Background(), "session-1", CreateOrderRequest{
		Items: []OrderLine{{MenuItemID: "pizza", Quantity: 1}},
	})
	require.NoError(t, err)

	// CREATED -> DELIVERED skips PREPARING and is rejected
	_, err = service.AdvanceStatus(context.Background(), o.ID, domain.OrderDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	prepared, err := service.AdvanceStatus(context.Background(), o.ID, domain.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPreparing, prepared.Status)

	delivered, err := service.AdvanceStatus(context.Background(), o.ID, domain.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDelivered, delivered.Status)

	// delivered orders cannot be cancelled
	_, err = service.CancelOrder(context.Background(), o.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
