package coupon

import "sync"

// Repository looks coupons up by code.
type Repository interface {
	GetByCode(code string) (Coupon, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	coupons []Coupon
}

func NewInMemoryRepository(seed []Coupon) *InMemoryRepository {
	r := &InMemoryRepository{coupons: make([]Coupon, 0, len(seed))}
	r.coupons = append(r.coupons, seed...)
	return r
}

func (r *InMemoryRepository) GetByCode(code string) (Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return Coupon{}, ErrInvalidCoupon
}
