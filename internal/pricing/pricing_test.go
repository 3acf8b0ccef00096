package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestShippingThreshold(t *testing.T) {
	cases := []struct {
		subtotal float64
		want     float64
	}{
		{0, FlatShippingFee},
		{10, FlatShippingFee},
		{49.99, FlatShippingFee},
		{50, FlatShippingFee}, // threshold is exclusive
		{50.01, 0},
		{59.98, 0},
		{1000, 0},
	}
	for _, c := range cases {
		if got := Shipping(c.subtotal); !almostEqual(got, c.want) {
			t.Errorf("Shipping(%v) = %v, want %v", c.subtotal, got, c.want)
		}
	}
}

func TestTaxIsFlatTenPercent(t *testing.T) {
	for _, s := range []float64{0, 1, 10, 59.98, 123.45} {
		if got := Tax(s); !almostEqual(got, s*0.10) {
			t.Errorf("Tax(%v) = %v, want %v", s, got, s*0.10)
		}
	}
}

func TestCalculateTotalIsSumOfParts(t *testing.T) {
	for _, s := range []float64{0, 4.2, 49.99, 50, 50.01, 200} {
		q := Calculate(s)
		if !almostEqual(q.Total, q.Subtotal+q.Shipping+q.Tax) {
			t.Errorf("Calculate(%v): total %v != %v + %v + %v", s, q.Total, q.Subtotal, q.Shipping, q.Tax)
		}
	}
}

// Two lines of 29.99 x2: free shipping kicks in.
func TestCalculateAboveThresholdScenario(t *testing.T) {
	q := Calculate(59.98)
	if !almostEqual(q.Shipping, 0) {
		t.Errorf("expected free shipping, got %v", q.Shipping)
	}
	if !almostEqual(q.Tax, 5.998) {
		t.Errorf("expected tax 5.998, got %v", q.Tax)
	}
	if !almostEqual(q.Total, 65.978) {
		t.Errorf("expected total 65.978, got %v", q.Total)
	}
}

// Single 10.00 item: shipping applies.
func TestCalculateBelowThresholdScenario(t *testing.T) {
	q := Calculate(10.00)
	if !almostEqual(q.Shipping, 4.99) {
		t.Errorf("expected shipping 4.99, got %v", q.Shipping)
	}
	if !almostEqual(q.Tax, 1.00) {
		t.Errorf("expected tax 1.00, got %v", q.Tax)
	}
	if !almostEqual(q.Total, 15.99) {
		t.Errorf("expected total 15.99, got %v", q.Total)
	}
}

func TestCalculateWithDiscount(t *testing.T) {
	// discount drops the base below the free-shipping threshold
	q := CalculateWithDiscount(60, 20)
	if !almostEqual(q.Shipping, 4.99) {
		t.Errorf("expected shipping on discounted base, got %v", q.Shipping)
	}
	if !almostEqual(q.Tax, 4.0) {
		t.Errorf("expected tax on discounted base, got %v", q.Tax)
	}
	if !almostEqual(q.Total, 40+4.99+4.0) {
		t.Errorf("unexpected total %v", q.Total)
	}

	// discount larger than the subtotal is clamped
	q = CalculateWithDiscount(10, 25)
	if !almostEqual(q.Discount, 10) {
		t.Errorf("expected clamped discount 10, got %v", q.Discount)
	}
	if !almostEqual(q.Total, 4.99) {
		t.Errorf("expected total = shipping only, got %v", q.Total)
	}

	// negative discount is ignored
	q = CalculateWithDiscount(10, -5)
	if !almostEqual(q.Discount, 0) {
		t.Errorf("expected discount 0, got %v", q.Discount)
	}
}
