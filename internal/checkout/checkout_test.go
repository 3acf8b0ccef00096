package checkout

import (
	"errors"
	"testing"

	"github.com/storelane/storefront-backend/internal/customer"
)

func validInfo() customer.ShippingInfo {
	return customer.ShippingInfo{
		Email:      "a@b.com",
		FirstName:  "Jamie",
		LastName:   "Lee",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
		Phone:      "555-0101",
	}
}

func TestValidateShippingInfoEmail(t *testing.T) {
	for _, bad := range []string{"foo", "foo@", "@bar.com", "a b@c.com"} {
		info := validInfo()
		info.Email = bad
		errs := ValidateShippingInfo(info)
		if errs == nil || errs["email"] == "" {
			t.Errorf("email %q should be rejected, got %v", bad, errs)
		}
	}

	if errs := ValidateShippingInfo(validInfo()); errs != nil {
		t.Errorf("valid info rejected: %v", errs)
	}
}

func TestValidateShippingInfoRequiredFields(t *testing.T) {
	info := validInfo()
	info.City = ""
	info.Phone = "   "
	errs := ValidateShippingInfo(info)
	if errs["city"] != "required" || errs["phone"] != "required" {
		t.Errorf("expected city and phone to be required, got %v", errs)
	}
	if len(errs) != 2 {
		t.Errorf("unexpected extra errors: %v", errs)
	}
}

func TestDraftHappyPath(t *testing.T) {
	d := NewDraft()
	if d.Step() != StepInfo {
		t.Fatalf("new draft should start on info, got %s", d.Step())
	}

	if err := d.SubmitInfo(validInfo(), "SAVE10"); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	if d.Step() != StepPayment {
		t.Fatalf("expected payment step, got %s", d.Step())
	}

	if err := d.SelectPayment(2); err != nil {
		t.Fatalf("SelectPayment: %v", err)
	}
	if d.Step() != StepReview {
		t.Fatalf("expected review step, got %s", d.Step())
	}

	info, methodID, couponCode, err := d.BeginSubmit()
	if err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	if info.Email != "a@b.com" || methodID != 2 || couponCode != "SAVE10" {
		t.Errorf("unexpected submit data %v %d %q", info, methodID, couponCode)
	}

	d.Complete()
	if d.Step() != StepSubmitted {
		t.Fatalf("expected submitted, got %s", d.Step())
	}
}

func TestInvalidInfoBlocksAdvance(t *testing.T) {
	d := NewDraft()
	info := validInfo()
	info.Email = "foo@"

	err := d.SubmitInfo(info, "")
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if d.Step() != StepInfo {
		t.Errorf("draft advanced past invalid info, step=%s", d.Step())
	}
	// entered data is not stored on failure
	if d.Shipping().Email != "" {
		t.Errorf("invalid info should not be kept")
	}
}

// review is unreachable without a selected payment method, no matter how
// the steps are navigated.
func TestReviewUnreachableWithoutPayment(t *testing.T) {
	d := NewDraft()

	// cannot select payment before info
	if err := d.SelectPayment(1); err != ErrWrongStep {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
	// cannot submit from info
	if _, _, _, err := d.BeginSubmit(); err != ErrWrongStep {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}

	if err := d.SubmitInfo(validInfo(), ""); err != nil {
		t.Fatal(err)
	}
	// zero method id is rejected on the payment step
	if err := d.SelectPayment(0); err != ErrPaymentRequired {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
	if d.Step() != StepPayment {
		t.Fatalf("draft advanced without payment, step=%s", d.Step())
	}
	// cannot submit from payment either
	if _, _, _, err := d.BeginSubmit(); err != ErrWrongStep {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
}

func TestBackPreservesData(t *testing.T) {
	d := NewDraft()
	if err := d.SubmitInfo(validInfo(), ""); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectPayment(3); err != nil {
		t.Fatal(err)
	}

	d.Back() // review -> payment
	if d.Step() != StepPayment {
		t.Fatalf("expected payment, got %s", d.Step())
	}
	d.Back() // payment -> info
	if d.Step() != StepInfo {
		t.Fatalf("expected info, got %s", d.Step())
	}
	d.Back() // info has nothing before it
	if d.Step() != StepInfo {
		t.Fatalf("expected info, got %s", d.Step())
	}

	if d.Shipping() != validInfo() || d.PaymentMethodID() != 3 {
		t.Errorf("back discarded entered data")
	}
}

func TestStoreResetsSubmittedDraft(t *testing.T) {
	s := NewStore()
	d := s.Get("session-a")
	if err := d.SubmitInfo(validInfo(), ""); err != nil {
		t.Fatal(err)
	}
	if s.Get("session-a") != d {
		t.Fatal("expected same draft while in progress")
	}

	d.Complete()
	fresh := s.Get("session-a")
	if fresh == d {
		t.Fatal("expected a new draft after submission")
	}
	if fresh.Step() != StepInfo || fresh.Shipping() != (customer.ShippingInfo{}) {
		t.Fatalf("expected blank draft, got step=%s", fresh.Step())
	}
}
