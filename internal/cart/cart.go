package cart

import (
	"sync"

	"github.com/storelane/storefront-backend/internal/product"
)

// Line is one product plus its quantity in the cart. The product is a
// snapshot taken when the line was created.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line's contribution to the cart subtotal.
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart is a session-scoped collection of lines keyed by product ID.
// Adding a product that is already present increments the existing line
// instead of creating a duplicate. Lines keep insertion order.
//
// The mutex only guards against two requests of the same session arriving
// together; within a session the cart is single-writer.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty units of p into the cart, merging with an existing line for
// the same product. The resulting quantity is clamped to [1, stock].
func (c *Cart) Add(p product.Product, qty int) {
	if qty <= 0 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity = clamp(c.lines[i].Quantity+qty, p.Stock)
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: clamp(qty, p.Stock)})
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line entirely rather than leaving an empty line behind.
func (c *Cart) SetQuantity(productID, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = clamp(qty, c.lines[i].Product.Stock)
			return
		}
	}
}

// Remove deletes the line for productID. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called once, after a successful order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal sums price * quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// TotalItems sums quantities over all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func clamp(qty, stock int) int {
	if stock > 0 && qty > stock {
		return stock
	}
	if qty < 1 {
		return 1
	}
	return qty
}
