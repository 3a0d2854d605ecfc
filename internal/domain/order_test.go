package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_CloneDoesNotShareDetails(t *testing.T) {
	paper := Product{ID: 1, Name: "Paper", Price: decimal.NewFromInt(20), Stock: 100}
	order := Order{ID: 1, TotalAmount: decimal.NewFromInt(40), Details: []OrderDetail{{Product: paper, Quantity: 2}}}

	clone := order.Clone()
	clone.Details[0].Quantity = 99

	assert.Equal(t, 2, order.Details[0].Quantity)
}

func TestOrder_DetailsTotal(t *testing.T) {
	paper := Product{ID: 1, Name: "Paper", Price: decimal.NewFromFloat(20.0)}
	pencil := Product{ID: 2, Name: "Pencil", Price: decimal.NewFromFloat(10.0)}
	order := Order{Details: []OrderDetail{
		{Product: paper, Quantity: 2},
		{Product: pencil, Quantity: 3},
	}}

	assert.True(t, order.DetailsTotal().Equal(decimal.NewFromInt(70)))
}

func TestCartItem_SubtotalAcceptsNegativeQuantity(t *testing.T) {
	item := CartItem{Product: Product{Price: decimal.NewFromInt(10)}, Quantity: -2}

	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(-20)))
}
