package domain

import "github.com/shopspring/decimal"

// CartItem is one pending (product, quantity) entry.
// Quantity is stored as entered, zero and negative values included.
type CartItem struct {
	Product  Product
	Quantity int
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.LineTotal(i.Quantity)
}
