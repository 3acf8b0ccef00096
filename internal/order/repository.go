package order

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Repository persists orders. Create must write the header and all items
// atomically: either the whole order lands or nothing does.
type Repository interface {
	Create(ctx context.Context, ord Order, items []Item) (Order, error)
	GetByNumber(ctx context.Context, number string) (Order, error)
	ListRecent(ctx context.Context, limit int) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	orders []Order

	// FailCreate makes Create return an error, for failure-path tests.
	FailCreate error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(_ context.Context, ord Order, items []Item) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate != nil {
		return Order{}, r.FailCreate
	}
	ord.ID = r.nextID
	r.nextID++
	ord.Items = make([]Item, len(items))
	for i, it := range items {
		it.ID = i + 1
		it.OrderID = ord.ID
		ord.Items[i] = it
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByNumber(_ context.Context, number string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListRecent(_ context.Context, limit int) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Order, 0, limit)
	for i := len(r.orders) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(_ context.Context, orderID int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
