package customer

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("customer not found")

// Repository persists customers.
type Repository interface {
	// CreateOrFind returns the existing customer with the same email, or
	// inserts a new one from the shipping info. Repeat buyers are unified
	// by email address.
	CreateOrFind(ctx context.Context, info ShippingInfo) (Customer, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.Mutex
	nextID    int
	customers []Customer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) CreateOrFind(_ context.Context, info ShippingInfo) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Email == info.Email {
			return c, nil
		}
	}
	c := Customer{ID: r.nextID, ShippingInfo: info}
	r.nextID++
	r.customers = append(r.customers, c)
	return c, nil
}

// Len reports how many customers have been stored. Test helper.
func (r *InMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.customers)
}
