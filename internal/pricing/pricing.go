package pricing

// Pricing rules for the storefront. Shipping is free above the threshold,
// tax is a flat rate. Every caller that needs totals goes through Quote so
// the numbers cannot drift between the cart view and the order manager.

const (
	// FreeShippingThreshold is exclusive: a subtotal of exactly 50 still pays shipping.
	FreeShippingThreshold = 50.0
	FlatShippingFee       = 4.99
	TaxRate               = 0.10
)

// Quote is the full price breakdown for a checkout.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Shipping returns the shipping fee for a subtotal.
func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// Tax returns the tax amount for a subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Calculate builds a quote from a plain subtotal.
func Calculate(subtotal float64) Quote {
	return CalculateWithDiscount(subtotal, 0)
}

// CalculateWithDiscount applies a coupon discount to the subtotal before
// shipping and tax. The discount is clamped to the subtotal so the quote
// never goes negative.
func CalculateWithDiscount(subtotal, discount float64) Quote {
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}
	base := subtotal - discount

	q := Quote{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: Shipping(base),
		Tax:      Tax(base),
	}
	q.Total = base + q.Shipping + q.Tax
	return q
}
