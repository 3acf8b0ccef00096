package order

// Order statuses. Admin transitions move an order forward; cancelled is
// reachable from any non-terminal status.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment statuses, driven by the payment bridge after the order exists.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Order is the order header. Amounts are derived from the cart and the
// pricing rules at submission time, never taken from the client.
type Order struct {
	ID              int     `json:"orderID"`
	OrderNumber     string  `json:"orderNumber"`
	CustomerID      int     `json:"customerID"`
	Subtotal        float64 `json:"subtotal"`
	DiscountAmount  float64 `json:"discountAmount"`
	ShippingAmount  float64 `json:"shippingAmount"`
	TaxAmount       float64 `json:"taxAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	CurrencyCode    string  `json:"currencyCode"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethodID int     `json:"paymentMethodID"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`

	Items []Item `json:"items,omitempty"`
}

// Item is a frozen snapshot of one cart line at the time of purchase,
// decoupled from the live product record.
type Item struct {
	ID          int     `json:"orderItemID"`
	OrderID     int     `json:"orderID"`
	ProductID   int     `json:"productID"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
}
