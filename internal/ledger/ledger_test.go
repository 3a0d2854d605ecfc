package ledger

import (
	"testing"
	"time"

	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paper = domain.Product{ID: 1, Name: "Paper", Price: decimal.NewFromInt(20), Stock: 100}

func TestLedger_StartsEmpty(t *testing.T) {
	l := New()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Orders())
	assert.Equal(t, int64(1), l.NextID())
}

func TestLedger_Record_AssignsSequentialIDs(t *testing.T) {
	l := New()

	for want := int64(1); want <= 5; want++ {
		order := l.Record(decimal.NewFromInt(20), []domain.OrderDetail{{Product: paper, Quantity: 1}})
		assert.Equal(t, want, order.ID)
	}

	orders := l.Orders()
	require.Len(t, orders, 5)
	for i, o := range orders {
		assert.Equal(t, int64(i+1), o.ID)
	}
	assert.Equal(t, int64(6), l.NextID())
}

func TestLedger_Record_StoresTotalAndDetails(t *testing.T) {
	l := New()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	details := []domain.OrderDetail{{Product: paper, Quantity: 2}}
	order := l.Record(decimal.NewFromInt(40), details)

	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, details, order.Details)
	assert.Equal(t, fixed, order.CreatedAt)
}

func TestLedger_Record_IsolatedFromCallerSlice(t *testing.T) {
	l := New()

	details := []domain.OrderDetail{{Product: paper, Quantity: 2}}
	l.Record(decimal.NewFromInt(40), details)
	details[0].Quantity = 7

	assert.Equal(t, 2, l.Orders()[0].Details[0].Quantity)
}

func TestLedger_Orders_ReturnsCopies(t *testing.T) {
	l := New()
	l.Record(decimal.NewFromInt(20), []domain.OrderDetail{{Product: paper, Quantity: 1}})

	orders := l.Orders()
	orders[0].Details[0].Quantity = 50
	orders[0].ID = 42

	stored := l.Orders()[0]
	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, 1, stored.Details[0].Quantity)
}
