package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fjod/go_cart/cart-cli/internal/cart"
	"github.com/fjod/go_cart/cart-cli/internal/catalog"
	"github.com/fjod/go_cart/cart-cli/internal/cli"
	"github.com/fjod/go_cart/cart-cli/internal/config"
	"github.com/fjod/go_cart/cart-cli/internal/ledger"
	"github.com/fjod/go_cart/cart-cli/internal/service"
	"github.com/fjod/go_cart/cart-cli/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Printf("cart-cli: %v", err)
		os.Exit(1)
	}
}

// run wires the application and drives one session. It returns instead of
// exiting so deferred cleanup always happens.
func run(in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	baseLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer baseLogger.Sync()

	lg := logger.WithSession(baseLogger, uuid.New().String())

	products, err := openCatalog(cfg)
	if err != nil {
		lg.Error("failed to open catalog", zap.String("backend", cfg.CatalogBackend), zap.Error(err))
		return fmt.Errorf("failed to open %s catalog: %w", cfg.CatalogBackend, err)
	}
	defer products.Close()
	lg.Info("catalog ready", zap.String("backend", cfg.CatalogBackend))

	shop := service.NewShopService(products, cart.New(), ledger.New(), lg, service.Options{
		StrictQuantity: cfg.StrictQuantity,
	})

	session := cli.NewSession(shop, in, out, lg)
	if err := session.Run(context.Background()); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}

func openCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.CatalogBackend == config.BackendSQLite {
		c, err := catalog.NewSQLiteCatalog(cfg.CatalogDSN)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	c, err := catalog.NewMemoryCatalog(catalog.DefaultProducts())
	if err != nil {
		return nil, err
	}
	return c, nil
}
