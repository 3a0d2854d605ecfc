package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. It is passed by value everywhere so cart items
// and order details hold their own snapshot.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Stock int // informational, never decremented
}

// LineTotal returns price * quantity for this product.
func (p Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}
