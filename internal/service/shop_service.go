package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjod/go_cart/cart-cli/internal/cart"
	"github.com/fjod/go_cart/cart-cli/internal/catalog"
	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/fjod/go_cart/cart-cli/internal/ledger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options tune optional behaviour of ShopService.
type Options struct {
	// StrictQuantity rejects quantities below 1 before they reach the cart.
	// When false, any quantity is accepted as entered.
	StrictQuantity bool
}

// ShopService ties the catalog, the session cart and the order ledger together.
type ShopService struct {
	catalog catalog.Catalog
	cart    *cart.ShoppingCart
	ledger  *ledger.Ledger
	logger  *zap.Logger
	opts    Options
}

func NewShopService(c catalog.Catalog, sc *cart.ShoppingCart, l *ledger.Ledger, logger *zap.Logger, opts Options) *ShopService {
	return &ShopService{
		catalog: c,
		cart:    sc,
		ledger:  l,
		logger:  logger,
		opts:    opts,
	}
}

func (s *ShopService) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error("list products failed", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// FindProduct returns catalog.ErrProductNotFound for unknown ids
func (s *ShopService) FindProduct(ctx context.Context, productID int64) (domain.Product, error) {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("find product %d: %w", productID, err)
	}
	return product, nil
}

// AddToCart looks the product up and appends it to the cart.
// Returns catalog.ErrProductNotFound for unknown ids.
func (s *ShopService) AddToCart(ctx context.Context, productID int64, quantity int) (domain.CartItem, error) {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			s.logger.Info("product not found", zap.Int64("product_id", productID))
		} else {
			s.logger.Error("catalog lookup failed", zap.Int64("product_id", productID), zap.Error(err))
		}
		return domain.CartItem{}, fmt.Errorf("find product %d: %w", productID, err)
	}

	if s.opts.StrictQuantity && quantity < 1 {
		s.logger.Info("quantity rejected", zap.Int64("product_id", productID), zap.Int("quantity", quantity))
		return domain.CartItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	item := s.cart.AddItem(product, quantity)
	s.logger.Info("item added",
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Int("cart_size", s.cart.Len()),
	)
	return item, nil
}

func (s *ShopService) CartItems() []domain.CartItem {
	return s.cart.Items()
}

func (s *ShopService) CartTotal() decimal.Decimal {
	return s.cart.TotalAmount()
}

// Checkout records the cart as a new order. The cart is left untouched
// and cart.ErrEmptyCart returned when there is nothing to buy.
func (s *ShopService) Checkout(ctx context.Context) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	order, err := s.cart.Checkout(s.ledger)
	if err != nil {
		s.logger.Info("checkout rejected", zap.Error(err))
		return domain.Order{}, err
	}

	s.logger.Info("order recorded",
		zap.Int64("order_id", order.ID),
		zap.String("total", order.TotalAmount.StringFixed(2)),
		zap.Int("lines", len(order.Details)),
	)
	return order, nil
}

func (s *ShopService) Orders() []domain.Order {
	return s.ledger.Orders()
}
