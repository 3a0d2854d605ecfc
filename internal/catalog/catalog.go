package catalog

import (
	"context"
	"errors"

	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog defines read-only access to the purchasable products.
// Consumers depend on this interface, not on a concrete backend.
type Catalog interface {
	// ListProducts returns every product ordered by ID
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// FindByID returns ErrProductNotFound if no product has the given id
	FindByID(ctx context.Context, id int64) (domain.Product, error)

	Close() error
}

// DefaultProducts is the seed every backend starts with.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Paper", Price: decimal.NewFromFloat(20.0), Stock: 100},
		{ID: 2, Name: "Pencil", Price: decimal.NewFromFloat(10.0), Stock: 200},
	}
}
