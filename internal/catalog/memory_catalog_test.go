package catalog

import (
	"context"
	"testing"

	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMemoryCatalog(t *testing.T) *MemoryCatalog {
	c, err := NewMemoryCatalog(DefaultProducts())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMemoryCatalog_ListProducts_ReturnsSeedInIDOrder(t *testing.T) {
	c := setupMemoryCatalog(t)

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Paper", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 100, products[0].Stock)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, "Pencil", products[1].Name)
	assert.True(t, products[1].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 200, products[1].Stock)
}

func TestMemoryCatalog_ListProducts_ReturnsCopy(t *testing.T) {
	c := setupMemoryCatalog(t)

	products, _ := c.ListProducts(context.Background())
	products[0].Name = "Changed"

	again, _ := c.ListProducts(context.Background())
	assert.Equal(t, "Paper", again[0].Name)
}

func TestMemoryCatalog_FindByID(t *testing.T) {
	c := setupMemoryCatalog(t)

	for _, want := range DefaultProducts() {
		got, err := c.FindByID(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.True(t, want.Price.Equal(got.Price))
		assert.Equal(t, want.Stock, got.Stock)
	}
}

func TestMemoryCatalog_FindByID_NotFound(t *testing.T) {
	c := setupMemoryCatalog(t)

	for _, id := range []int64{0, -1, 3, 999} {
		_, err := c.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrProductNotFound, "id %d", id)
	}
}

func TestMemoryCatalog_CancelledContext(t *testing.T) {
	c := setupMemoryCatalog(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProducts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewMemoryCatalog_DuplicateID(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Paper"},
		{ID: 1, Name: "Other paper"},
	}

	_, err := NewMemoryCatalog(products)
	assert.Error(t, err)
}

func TestNewMemoryCatalog_SortsByID(t *testing.T) {
	c, err := NewMemoryCatalog([]domain.Product{{ID: 5, Name: "Ink"}, {ID: 2, Name: "Pencil"}})
	require.NoError(t, err)

	products, _ := c.ListProducts(context.Background())
	assert.Equal(t, int64(2), products[0].ID)
	assert.Equal(t, int64(5), products[1].ID)
}
