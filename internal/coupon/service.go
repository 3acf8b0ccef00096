package coupon

import "strings"

// Service validates coupon codes against the current subtotal.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Validate returns the discount amount a code yields for the given
// subtotal. Codes are case-insensitive.
func (s *Service) Validate(code string, subtotal float64) (float64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, ErrInvalidCoupon
	}

	c, err := s.repo.GetByCode(code)
	if err != nil {
		return 0, err
	}
	if !c.IsActive {
		return 0, ErrInvalidCoupon
	}
	if subtotal < c.MinSubtotal {
		return 0, ErrBelowMinimum
	}
	return c.Discount(subtotal), nil
}
