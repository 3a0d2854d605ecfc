package ledger

import (
	"time"

	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// Ledger is the append-only record of completed orders.
// Identifiers start at 1 and grow by one per recorded order.
type Ledger struct {
	orders []domain.Order
	nextID int64
	now    func() time.Time
}

func New() *Ledger {
	return &Ledger{nextID: 1, now: time.Now}
}

// Record assigns the next identifier, stores the order and returns it.
// It never fails.
func (l *Ledger) Record(total decimal.Decimal, details []domain.OrderDetail) domain.Order {
	order := domain.Order{
		ID:          l.nextID,
		TotalAmount: total,
		Details:     details,
		CreatedAt:   l.now(),
	}.Clone()

	l.orders = append(l.orders, order)
	l.nextID++
	return order.Clone()
}

// Orders returns all recorded orders in creation order
func (l *Ledger) Orders() []domain.Order {
	result := make([]domain.Order, len(l.orders))
	for i, o := range l.orders {
		result[i] = o.Clone()
	}
	return result
}

func (l *Ledger) Len() int {
	return len(l.orders)
}

// NextID is the identifier the next Record call will assign
func (l *Ledger) NextID() int64 {
	return l.nextID
}
