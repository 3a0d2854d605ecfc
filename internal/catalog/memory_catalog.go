package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/fjod/go_cart/cart-cli/internal/domain"
)

// MemoryCatalog implements Catalog over a fixed slice established at startup
type MemoryCatalog struct {
	products []domain.Product
	byID     map[int64]int // productID -> index in products
}

// NewMemoryCatalog creates a catalog from the given products.
// Product IDs must be unique.
func NewMemoryCatalog(products []domain.Product) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(c.products, products)
	sort.SliceStable(c.products, func(i, j int) bool { return c.products[i].ID < c.products[j].ID })

	for i, p := range c.products {
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// ListProducts returns a copy of the products ordered by ID
func (c *MemoryCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]domain.Product, len(c.products))
	copy(result, c.products)
	return result, nil
}

func (c *MemoryCatalog) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	idx, exists := c.byID[id]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}
	return c.products[idx], nil
}

func (c *MemoryCatalog) Close() error {
	return nil
}
