package structs

import (
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

// CartLine is one product selection inside a session cart.
type CartLine struct {
	ProductId uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
}

// Cart accumulates a customer's selections before checkout. It lives in the
// cache keyed by session, never in the database, and is discarded on a
// successful checkout. Lines keeps insertion order so the cart renders the
// way the customer built it.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// Add increments the quantity for the product by one, inserting a new line
// at quantity 1 if absent. No upper bound is enforced.
func (c *Cart) Add(productId uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].ProductId == productId {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{ProductId: productId, Quantity: 1})
}

// Remove decrements the quantity for the product by one. Lines that reach
// zero are pruned; removing an absent product is a no-op.
func (c *Cart) Remove(productId uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].ProductId != productId {
			continue
		}
		c.Lines[i].Quantity--
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// SetNote attaches a free-text note to an existing line.
func (c *Cart) SetNote(productId uuid.UUID, note string) {
	for i := range c.Lines {
		if c.Lines[i].ProductId == productId {
			c.Lines[i].Note = note
			return
		}
	}
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// CartView is the cart as returned to the storefront, priced against the
// current catalog.
type CartView struct {
	Cart      *Cart  `json:"cart"`
	ItemCount int    `json:"item_count"`
	Total     uint64 `json:"total"` // cents
}

// Total prices the cart in cents against a catalog snapshot. A line whose
// product is missing from the snapshot contributes nothing; an empty cart
// totals exactly zero.
func (c *Cart) Total(catalog map[uuid.UUID]*tables.Product) uint64 {
	var total uint64
	for _, line := range c.Lines {
		product, ok := catalog[line.ProductId]
		if !ok || line.Quantity <= 0 {
			continue
		}
		total += product.Price * uint64(line.Quantity)
	}
	return total
}
