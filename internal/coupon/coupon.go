package coupon

import "errors"

var (
	ErrInvalidCoupon = errors.New("coupon is invalid or inactive")
	ErrBelowMinimum  = errors.New("subtotal below coupon minimum")
)

// Kind says how a coupon's value is applied.
type Kind string

const (
	KindPercent Kind = "percent" // value is a percentage of the subtotal
	KindFixed   Kind = "fixed"   // value is a flat amount
)

// Coupon is a discount code redeemable at checkout.
type Coupon struct {
	ID          int     `json:"couponID"`
	Code        string  `json:"code"`
	Kind        Kind    `json:"kind"`
	Value       float64 `json:"value"`
	MinSubtotal float64 `json:"minSubtotal"`
	IsActive    bool    `json:"isActive"`
}

// Discount computes the discount a coupon yields for a subtotal.
func (c Coupon) Discount(subtotal float64) float64 {
	var d float64
	switch c.Kind {
	case KindPercent:
		d = subtotal * c.Value / 100
	case KindFixed:
		d = c.Value
	}
	if d > subtotal {
		d = subtotal
	}
	if d < 0 {
		d = 0
	}
	return d
}
