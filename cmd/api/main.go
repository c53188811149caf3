package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"verse-storefront/internal/cart"
	"verse-storefront/internal/config"
	"verse-storefront/internal/db"
	"verse-storefront/internal/httpserver"
	"verse-storefront/internal/localstore"
	featuredrepo "verse-storefront/internal/repository/featured"
	catalogsvc "verse-storefront/internal/service/catalog"
	checkoutsvc "verse-storefront/internal/service/checkout"
	featuredsvc "verse-storefront/internal/service/featured"
	sessionsvc "verse-storefront/internal/service/session"
	"verse-storefront/internal/shopify"
	"verse-storefront/internal/stripe"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	storage, err := localstore.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatalf("init local storage: %v", err)
	}

	storefrontClient := shopify.NewStorefront(cfg.ShopifyDomain, cfg.ShopifyAPIVersion, cfg.ShopifyStorefrontToken, logger)
	adminClient := shopify.NewAdmin(cfg.ShopifyDomain, cfg.ShopifyAPIVersion, cfg.ShopifyAdminToken, logger)
	stripeClient := stripe.New(cfg.StripeSecretKey, logger)

	cartStore := cart.New(storage, logger)
	sessionStore := sessionsvc.New(storefrontClient, storage, logger)
	sessionStore.Init(ctx)

	catalogService := catalogsvc.New(storefrontClient)
	checkoutService := checkoutsvc.New(stripeClient, adminClient, storefrontClient, cartStore, cfg.Currency, logger)

	featuredRepo := featuredrepo.NewPostgres(dbpool)
	featuredService := featuredsvc.New(featuredRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:     catalogService,
		Cart:           cartStore,
		Session:        sessionStore,
		CheckoutSvc:    checkoutService,
		FeaturedSvc:    featuredService,
		AdminVerifier:  httpserver.NewStaticSecretVerifier(cfg.AdminSecret),
		PublishableKey: cfg.StripePublishableKey,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
