package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetail is a snapshot of a purchased product taken at checkout.
type OrderDetail struct {
	Product  Product
	Quantity int
}

func (d OrderDetail) Subtotal() decimal.Decimal {
	return d.Product.LineTotal(d.Quantity)
}

// Order is an immutable record produced by checkout.
type Order struct {
	ID          int64
	TotalAmount decimal.Decimal
	Details     []OrderDetail
	CreatedAt   time.Time
}

// Clone returns a copy that shares no slice memory with o.
func (o Order) Clone() Order {
	details := make([]OrderDetail, len(o.Details))
	copy(details, o.Details)
	o.Details = details
	return o
}

// DetailsTotal sums price * quantity over the order details.
func (o Order) DetailsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range o.Details {
		total = total.Add(d.Subtotal())
	}
	return total
}
