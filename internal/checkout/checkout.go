package checkout

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/storelane/storefront-backend/internal/customer"
)

// Step is the checkout wizard position. Steps are strictly ordered; a
// draft can only move forward through a guarded transition, and backward
// freely without losing entered data.
type Step string

const (
	StepInfo      Step = "info"
	StepPayment   Step = "payment"
	StepReview    Step = "review"
	StepSubmitted Step = "submitted"
)

var (
	ErrWrongStep       = errors.New("operation not allowed in current step")
	ErrPaymentRequired = errors.New("a payment method must be selected")
)

// FieldErrors maps a form field to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateShippingInfo checks the info step form. Every field is
// required; the email must look like an address.
func ValidateShippingInfo(info customer.ShippingInfo) FieldErrors {
	errs := FieldErrors{}
	require(errs, "email", info.Email)
	require(errs, "firstName", info.FirstName)
	require(errs, "lastName", info.LastName)
	require(errs, "address", info.Address)
	require(errs, "city", info.City)
	require(errs, "postalCode", info.PostalCode)
	require(errs, "country", info.Country)
	require(errs, "phone", info.Phone)

	if _, bad := errs["email"]; !bad && !emailPattern.MatchString(info.Email) {
		errs["email"] = "invalid email address"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func require(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "required"
	}
}

// Draft is one session's in-progress checkout. All transitions go through
// the methods below so the step invariants cannot be bypassed.
type Draft struct {
	mu              sync.Mutex
	step            Step
	shipping        customer.ShippingInfo
	couponCode      string
	paymentMethodID int
}

func NewDraft() *Draft {
	return &Draft{step: StepInfo}
}

func (d *Draft) Step() Step {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step
}

func (d *Draft) Shipping() customer.ShippingInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shipping
}

func (d *Draft) CouponCode() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.couponCode
}

func (d *Draft) PaymentMethodID() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paymentMethodID
}

// SubmitInfo validates the shipping form and advances info -> payment.
// On validation failure the draft stays on info and the field errors are
// returned for inline display.
func (d *Draft) SubmitInfo(info customer.ShippingInfo, couponCode string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepInfo {
		return ErrWrongStep
	}
	if errs := ValidateShippingInfo(info); errs != nil {
		return errs
	}
	d.shipping = info
	d.couponCode = strings.TrimSpace(couponCode)
	d.step = StepPayment
	return nil
}

// SelectPayment records the chosen method and advances payment -> review.
// The caller must have resolved the ID to an active payment method first.
func (d *Draft) SelectPayment(methodID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepPayment {
		return ErrWrongStep
	}
	if methodID <= 0 {
		return ErrPaymentRequired
	}
	d.paymentMethodID = methodID
	d.step = StepReview
	return nil
}

// Back moves one step toward info. It is always allowed, never guarded,
// and keeps everything already entered.
func (d *Draft) Back() {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.step {
	case StepPayment:
		d.step = StepInfo
	case StepReview:
		d.step = StepPayment
	}
}

// BeginSubmit checks the draft is ready for submission and returns the
// data the order manager needs. The draft stays on review; Complete moves
// it to the terminal step once the order has actually been persisted.
func (d *Draft) BeginSubmit() (customer.ShippingInfo, int, string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepReview {
		return customer.ShippingInfo{}, 0, "", ErrWrongStep
	}
	if d.paymentMethodID <= 0 {
		// unreachable through the public transitions, kept as a hard stop
		return customer.ShippingInfo{}, 0, "", ErrPaymentRequired
	}
	return d.shipping, d.paymentMethodID, d.couponCode, nil
}

// Complete marks the draft submitted.
func (d *Draft) Complete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.step = StepSubmitted
}
