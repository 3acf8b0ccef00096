package customer

// ShippingInfo is the address form collected at checkout. All fields are
// required; the checkout package validates them before this is persisted.
type ShippingInfo struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Customer is the persisted buyer record created from shipping info.
type Customer struct {
	ID int `json:"customerID"`
	ShippingInfo
	CreatedAt string `json:"createdAt,omitempty"`
}
