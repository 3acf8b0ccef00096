package cart

import (
	"testing"

	"github.com/storelane/storefront-backend/internal/product"
)

var (
	mug  = product.Product{ID: 1, Name: "Mug", SKU: "MUG-01", Price: 12.50, Stock: 10}
	tote = product.Product{ID: 2, Name: "Tote", SKU: "TOTE-01", Price: 29.99, Stock: 3}
)

func TestAddMergesLines(t *testing.T) {
	c := New()
	c.Add(mug, 2)
	c.Add(tote, 1)
	c.Add(mug, 3)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.ID != 1 || lines[0].Quantity != 5 {
		t.Errorf("expected mug qty 5 first, got %+v", lines[0])
	}
	if c.TotalItems() != 6 {
		t.Errorf("expected 6 items, got %d", c.TotalItems())
	}
}

func TestAddClampsToStock(t *testing.T) {
	c := New()
	c.Add(tote, 2)
	c.Add(tote, 5) // would be 7, stock is 3

	if got := c.Lines()[0].Quantity; got != 3 {
		t.Errorf("expected quantity clamped to 3, got %d", got)
	}

	// zero quantity on add means one unit
	c2 := New()
	c2.Add(mug, 0)
	if got := c2.Lines()[0].Quantity; got != 1 {
		t.Errorf("expected quantity 1, got %d", got)
	}
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.Add(mug, 2)

	c.SetQuantity(1, 7)
	if got := c.Lines()[0].Quantity; got != 7 {
		t.Errorf("expected 7, got %d", got)
	}

	c.SetQuantity(1, 99) // above stock
	if got := c.Lines()[0].Quantity; got != 10 {
		t.Errorf("expected clamp to stock 10, got %d", got)
	}

	// zero removes the line rather than keeping an empty one
	c.SetQuantity(1, 0)
	if !c.IsEmpty() {
		t.Errorf("expected empty cart after SetQuantity 0")
	}

	// setting quantity for an absent product is a no-op
	c.SetQuantity(42, 3)
	if !c.IsEmpty() {
		t.Errorf("expected cart to stay empty")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := New()
	c.Add(mug, 1)
	c.Add(tote, 1)

	c.Remove(1)
	c.Remove(1) // second remove is a no-op

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Product.ID != 2 {
		t.Fatalf("unexpected lines %+v", lines)
	}
}

func TestSubtotal(t *testing.T) {
	c := New()
	if c.Subtotal() != 0 {
		t.Errorf("empty cart subtotal should be 0")
	}

	c.Add(mug, 2)  // 25.00
	c.Add(tote, 1) // 29.99
	want := 54.99
	if got := c.Subtotal(); got != want {
		t.Errorf("subtotal = %v, want %v", got, want)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(mug, 2)
	c.Clear()
	if !c.IsEmpty() || c.TotalItems() != 0 || c.Subtotal() != 0 {
		t.Errorf("expected cleared cart to be empty")
	}
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	s := NewStore()
	a := s.Get("session-a")
	b := s.Get("session-b")
	a.Add(mug, 1)

	if !b.IsEmpty() {
		t.Errorf("session-b cart should be empty")
	}
	if s.Get("session-a") != a {
		t.Errorf("expected same cart instance for same session")
	}

	s.Drop("session-a")
	if !s.Get("session-a").IsEmpty() {
		t.Errorf("expected fresh cart after Drop")
	}
}
