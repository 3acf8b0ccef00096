package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storelane/storefront-backend/internal/cart"
	"github.com/storelane/storefront-backend/internal/customer"
	"github.com/storelane/storefront-backend/internal/pricing"
	"github.com/storelane/storefront-backend/pkg/metrics"
)

var ErrEmptyCart = errors.New("cart is empty")

// CouponValidator turns a coupon code into a discount amount.
type CouponValidator interface {
	Validate(code string, subtotal float64) (float64, error)
}

// Service assembles and persists the customer + order + items graph.
type Service struct {
	repo      Repository
	customers customer.Repository
	coupons   CouponValidator // optional
	metrics   *metrics.StoreMetrics
}

func NewService(repo Repository, customers customer.Repository, coupons CouponValidator, m *metrics.StoreMetrics) *Service {
	return &Service{repo: repo, customers: customers, coupons: coupons, metrics: m}
}

// PlaceOrder materializes an order from the current cart contents. Totals
// are always recomputed here from the live cart; a previously displayed
// quote is never trusted. The header and item snapshots are persisted in
// one transaction by the repository.
func (s *Service) PlaceOrder(ctx context.Context, crt *cart.Cart, info customer.ShippingInfo, paymentMethodID int, couponCode, currencyCode string) (Order, error) {
	lines := crt.Lines()
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if currencyCode == "" {
		currencyCode = "USD"
	}

	cust, err := s.customers.CreateOrFind(ctx, info)
	if err != nil {
		s.countFailure()
		return Order{}, fmt.Errorf("create customer: %w", err)
	}

	subtotal := crt.Subtotal()
	var discount float64
	if couponCode != "" && s.coupons != nil {
		discount, err = s.coupons.Validate(couponCode, subtotal)
		if err != nil {
			s.countFailure()
			return Order{}, fmt.Errorf("apply coupon: %w", err)
		}
	}
	quote := pricing.CalculateWithDiscount(subtotal, discount)

	now := nowRFC3339()
	ord := Order{
		OrderNumber:     NewOrderNumber(),
		CustomerID:      cust.ID,
		Subtotal:        quote.Subtotal,
		DiscountAmount:  quote.Discount,
		ShippingAmount:  quote.Shipping,
		TaxAmount:       quote.Tax,
		TotalAmount:     quote.Total,
		CurrencyCode:    currencyCode,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		PaymentMethodID: paymentMethodID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			SKU:         l.Product.SKU,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
			TotalPrice:  l.Subtotal(),
		})
	}

	created, err := s.repo.Create(ctx, ord, items)
	if err != nil {
		s.countFailure()
		return Order{}, fmt.Errorf("persist order: %w", err)
	}

	log.Printf("order %s placed: customer=%d items=%d total=%.2f %s",
		created.OrderNumber, created.CustomerID, len(created.Items), created.TotalAmount, created.CurrencyCode)
	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
	}
	return created, nil
}

func (s *Service) GetByNumber(ctx context.Context, number string) (Order, error) {
	if number == "" {
		return Order{}, ErrNotFound
	}
	return s.repo.GetByNumber(ctx, number)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

// allowed admin transitions; delivered and cancelled are terminal.
var transitions = map[string][]string{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusShipped, StatusCancelled},
	StatusShipped: {StatusDelivered},
}

// UpdateStatus applies an administrative transition after checking it is
// allowed from the order's current status.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, from, to string) error {
	for _, next := range transitions[from] {
		if next == to {
			return s.repo.UpdateStatus(ctx, orderID, to)
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// NewOrderNumber builds a globally unique order identifier. A uuid
// fragment instead of a timestamp keeps concurrent submissions from
// colliding.
func NewOrderNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + raw[:12]
}

func (s *Service) countFailure() {
	if s.metrics != nil {
		s.metrics.OrdersFailed.Inc()
	}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
