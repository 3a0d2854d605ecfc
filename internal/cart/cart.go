package cart

import (
	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// OrderRecorder stores a finished order and assigns its identifier.
// *ledger.Ledger satisfies it.
type OrderRecorder interface {
	Record(total decimal.Decimal, details []domain.OrderDetail) domain.Order
}

// ShoppingCart holds the entries of the active session in insertion order.
// The same product added twice yields two entries.
type ShoppingCart struct {
	items []domain.CartItem
}

func New() *ShoppingCart {
	return &ShoppingCart{}
}

// AddItem appends the entry as given, without validating quantity,
// and returns it as confirmation.
func (c *ShoppingCart) AddItem(product domain.Product, quantity int) domain.CartItem {
	item := domain.CartItem{Product: product, Quantity: quantity}
	c.items = append(c.items, item)
	return item
}

// Items returns a copy of the entries
func (c *ShoppingCart) Items() []domain.CartItem {
	result := make([]domain.CartItem, len(c.items))
	copy(result, c.items)
	return result
}

// TotalAmount is the sum of price * quantity over all entries
func (c *ShoppingCart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *ShoppingCart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *ShoppingCart) Len() int {
	return len(c.items)
}

// OrderDetails snapshots each entry, preserving order
func (c *ShoppingCart) OrderDetails() []domain.OrderDetail {
	details := make([]domain.OrderDetail, 0, len(c.items))
	for _, item := range c.items {
		details = append(details, domain.OrderDetail{Product: item.Product, Quantity: item.Quantity})
	}
	return details
}

// Checkout turns the entries into one order recorded by r and empties the cart.
// An empty cart returns ErrEmptyCart and nothing changes.
func (c *ShoppingCart) Checkout(r OrderRecorder) (domain.Order, error) {
	if c.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}

	order := r.Record(c.TotalAmount(), c.OrderDetails())
	c.items = nil
	return order, nil
}
