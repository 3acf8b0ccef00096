package checkout

import (
	"context"
	"fmt"
	"log"

	"github.com/storelane/storefront-backend/internal/cart"
	"github.com/storelane/storefront-backend/internal/customer"
	"github.com/storelane/storefront-backend/internal/order"
	"github.com/storelane/storefront-backend/internal/paymentmethod"
	"github.com/storelane/storefront-backend/pkg/metrics"
)

// OrderPlacer is the order manager as seen from checkout.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, crt *cart.Cart, info customer.ShippingInfo, paymentMethodID int, couponCode, currencyCode string) (order.Order, error)
}

// MethodFinder resolves a payment method ID to an active method.
type MethodFinder interface {
	GetActive(id int) (paymentmethod.PaymentMethod, error)
}

// Service drives the checkout wizard for every session.
type Service struct {
	drafts  *Store
	carts   *cart.Store
	methods MethodFinder
	orders  OrderPlacer
	metrics *metrics.StoreMetrics
}

func NewService(drafts *Store, carts *cart.Store, methods MethodFinder, orders OrderPlacer, m *metrics.StoreMetrics) *Service {
	return &Service{drafts: drafts, carts: carts, methods: methods, orders: orders, metrics: m}
}

// Current returns the session's draft, creating a blank one when the
// previous checkout was completed.
func (s *Service) Current(sessionID string) *Draft {
	return s.drafts.Get(sessionID)
}

func (s *Service) SubmitInfo(sessionID string, info customer.ShippingInfo, couponCode string) error {
	if err := s.drafts.Get(sessionID).SubmitInfo(info, couponCode); err != nil {
		s.countRejection(StepInfo)
		return err
	}
	return nil
}

// SelectPayment verifies the method exists and is active before letting
// the draft advance to review.
func (s *Service) SelectPayment(sessionID string, methodID int) error {
	d := s.drafts.Get(sessionID)
	if methodID <= 0 {
		s.countRejection(StepPayment)
		return ErrPaymentRequired
	}
	if _, err := s.methods.GetActive(methodID); err != nil {
		s.countRejection(StepPayment)
		if err == paymentmethod.ErrNotFound {
			return ErrPaymentRequired
		}
		return fmt.Errorf("load payment method: %w", err)
	}
	if err := d.SelectPayment(methodID); err != nil {
		s.countRejection(StepPayment)
		return err
	}
	return nil
}

func (s *Service) Back(sessionID string) Step {
	d := s.drafts.Get(sessionID)
	d.Back()
	return d.Step()
}

// Submit places the order from the review step. The cart is cleared only
// after the order manager reports success; any failure leaves both the
// draft and the cart untouched so the user can retry.
func (s *Service) Submit(ctx context.Context, sessionID, currencyCode string) (order.Order, error) {
	d := s.drafts.Get(sessionID)
	info, methodID, couponCode, err := d.BeginSubmit()
	if err != nil {
		s.countRejection(StepReview)
		return order.Order{}, err
	}

	crt := s.carts.Get(sessionID)
	ord, err := s.orders.PlaceOrder(ctx, crt, info, methodID, couponCode, currencyCode)
	if err != nil {
		log.Printf("checkout submit failed for session %s: %v", sessionID, err)
		return order.Order{}, err
	}

	d.Complete()
	crt.Clear()
	return ord, nil
}

func (s *Service) countRejection(step Step) {
	if s.metrics != nil {
		s.metrics.CheckoutRejected.WithLabelValues(string(step)).Inc()
	}
}
