package paymentmethod

// PaymentMethod is a way to pay that the storefront offers at checkout.
// Provider names match the payment bridge endpoints (stripe, paypal).
type PaymentMethod struct {
	ID       int    `json:"paymentMethodID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	IsActive bool   `json:"isActive"`
}
