package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fjod/go_cart/cart-cli/internal/cart"
	"github.com/fjod/go_cart/cart-cli/internal/catalog"
	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/fjod/go_cart/cart-cli/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Shop is what the session needs from the core. *service.ShopService implements it.
type Shop interface {
	Products(ctx context.Context) ([]domain.Product, error)
	FindProduct(ctx context.Context, productID int64) (domain.Product, error)
	AddToCart(ctx context.Context, productID int64, quantity int) (domain.CartItem, error)
	CartItems() []domain.CartItem
	CartTotal() decimal.Decimal
	Checkout(ctx context.Context) (domain.Order, error)
	Orders() []domain.Order
}

const (
	choiceProducts = 1
	choiceCart     = 2
	choiceOrders   = 3
	choiceExit     = 4
)

// Session drives the interactive menu for a single user.
type Session struct {
	shop   Shop
	prompt *Prompter
	out    io.Writer
	logger *zap.Logger
}

func NewSession(shop Shop, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	return &Session{
		shop:   shop,
		prompt: NewPrompter(in, out),
		out:    out,
		logger: logger,
	}
}

// Run loops until the user picks exit or the input ends.
// Errors are returned only when the core itself fails.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")
	defer s.logger.Info("session ended")

	for {
		s.displayMenu()
		choice, err := s.prompt.Int("Enter your choice: ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case choiceProducts:
			err = s.viewProducts(ctx)
		case choiceCart:
			err = s.viewCart(ctx)
		case choiceOrders:
			s.viewOrders()
		case choiceExit:
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice! Please try again.")
		}

		if err != nil {
			return s.finish(err)
		}
	}
}

// finish treats end of input as a normal exit
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Exiting...")
		return nil
	}
	s.logger.Error("session aborted", zap.Error(err))
	return err
}

func (s *Session) displayMenu() {
	fmt.Fprintln(s.out, "1. View Products")
	fmt.Fprintln(s.out, "2. View Shopping Cart")
	fmt.Fprintln(s.out, "3. View Orders")
	fmt.Fprintln(s.out, "4. Exit")
}

func (s *Session) viewProducts(ctx context.Context) error {
	products, err := s.shop.Products(ctx)
	if err != nil {
		return err
	}
	RenderProducts(s.out, products)

	for {
		if err := s.addProduct(ctx); err != nil {
			return err
		}

		again, err := s.prompt.YesNo("Do you want to add another product? (Y/N): ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) addProduct(ctx context.Context) error {
	id, err := s.prompt.Int("Enter the ID of the product you want to add to the shopping cart: ")
	if err != nil {
		return err
	}

	if _, err := s.shop.FindProduct(ctx, int64(id)); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			fmt.Fprintln(s.out, "Product ID not found!")
			return nil
		}
		return err
	}

	quantity, err := s.prompt.Int("Enter the quantity: ")
	if err != nil {
		return err
	}

	_, err = s.shop.AddToCart(ctx, int64(id), quantity)
	switch {
	case err == nil:
		fmt.Fprintln(s.out, "Product added successfully!")
	case errors.Is(err, service.ErrInvalidQuantity):
		fmt.Fprintln(s.out, "Quantity must be a positive number!")
	default:
		return err
	}
	return nil
}

func (s *Session) viewCart(ctx context.Context) error {
	RenderCart(s.out, s.shop.CartItems())
	fmt.Fprintf(s.out, "Cart total: $%s\n", money(s.shop.CartTotal()))

	yes, err := s.prompt.YesNo("Do you want to check out all the products? (Y/N): ")
	if err != nil || !yes {
		return err
	}

	order, err := s.shop.Checkout(ctx)
	if errors.Is(err, cart.ErrEmptyCart) {
		fmt.Fprintln(s.out, "Your shopping cart is empty. Nothing to checkout!")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Total amount: $%s\n", money(order.TotalAmount))
	fmt.Fprintln(s.out, "Order Details:")
	RenderDetails(s.out, order.Details)
	fmt.Fprintf(s.out, "Order ID: %d\n", order.ID)
	fmt.Fprintln(s.out, "You have successfully checked out the products!")
	return nil
}

func (s *Session) viewOrders() {
	orders := s.shop.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(s.out, "No orders found!")
		return
	}

	for _, o := range orders {
		RenderOrder(s.out, o)
	}
}
