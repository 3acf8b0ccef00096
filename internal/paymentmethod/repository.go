package paymentmethod

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("payment method not found")

// Repository provides access to payment method rows.
type Repository interface {
	ListActive() ([]PaymentMethod, error)
	GetByID(id int) (PaymentMethod, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	methods []PaymentMethod
}

func NewInMemoryRepository(seed []PaymentMethod) *InMemoryRepository {
	r := &InMemoryRepository{methods: make([]PaymentMethod, 0, len(seed))}
	r.methods = append(r.methods, seed...)
	return r
}

func (r *InMemoryRepository) ListActive() ([]PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.methods {
		if m.ID == id {
			return m, nil
		}
	}
	return PaymentMethod{}, ErrNotFound
}
