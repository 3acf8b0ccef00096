package currency

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("currency not found")

// Repository provides access to currency rows.
type Repository interface {
	ListActive() ([]Currency, error)
	GetByCode(code string) (Currency, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	currencies []Currency
}

func NewInMemoryRepository(seed []Currency) *InMemoryRepository {
	r := &InMemoryRepository{currencies: make([]Currency, 0, len(seed))}
	r.currencies = append(r.currencies, seed...)
	return r
}

func (r *InMemoryRepository) ListActive() ([]Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByCode(code string) (Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, ErrNotFound
}
