package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/kuaizhixiang/storefront/internal/cart/app"
	"github.com/kuaizhixiang/storefront/internal/cart/infra/localstore"

	catalogapp "github.com/kuaizhixiang/storefront/internal/catalog/app"
	"github.com/kuaizhixiang/storefront/internal/catalog/infra/staticfile"

	checkoutapp "github.com/kuaizhixiang/storefront/internal/checkout/app"
	checkoutadapter "github.com/kuaizhixiang/storefront/internal/checkout/infra/adapter"
	"github.com/kuaizhixiang/storefront/internal/checkout/infra/payment"

	supportapp "github.com/kuaizhixiang/storefront/internal/support/app"
	supportmail "github.com/kuaizhixiang/storefront/internal/support/infra/mail"

	httpapi "github.com/kuaizhixiang/storefront/internal/http"
	"github.com/kuaizhixiang/storefront/pkg/config"
	"github.com/kuaizhixiang/storefront/pkg/logger"
	"github.com/kuaizhixiang/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogRepo, err := staticfile.NewProductRepo()
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartStore := cartapp.NewStore(localstore.New(cfg.CartSnapshotPath), log)

	// Checkout
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartStoreReader(cartStore),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		payment.NewClient(cfg.CheckoutProviderURL),
		cfg.BaseURL,
		10,
	)

	// Support
	supportSvc := supportapp.NewService(
		supportmail.NewSendGridMailer(cfg.SendGridAPIKey),
		cfg.ContactFrom,
		cfg.ContactTo,
	)

	router := httpapi.NewRouter(httpapi.Handlers{
		Catalog:  httpapi.NewCatalogHandler(catalogSvc),
		Cart:     httpapi.NewCartHandler(cartStore, catalogSvc),
		Checkout: httpapi.NewCheckoutHandler(checkoutSvc),
		Contact:  httpapi.NewContactHandler(supportSvc),
	}, cfg.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
