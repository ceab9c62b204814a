package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-backend/internal/config"
	"storefront-backend/internal/db"
	"storefront-backend/internal/httpserver"
	cartsnapshotrepo "storefront-backend/internal/repository/cartsnapshot"
	productrepo "storefront-backend/internal/repository/product"
	promorepo "storefront-backend/internal/repository/promotions"
	catalogsvc "storefront-backend/internal/service/catalog"
	checkoutsvc "storefront-backend/internal/service/checkout"
	promotionssvc "storefront-backend/internal/service/promotions"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	promotionsRepo := promorepo.NewPostgres(dbpool)
	snapshotRepo := cartsnapshotrepo.NewPostgres(dbpool)

	catalogService := catalogsvc.New(productRepo, logger)
	promotionsService := promotionssvc.New(promotionsRepo, logger)
	checkoutService := checkoutsvc.New(catalogService, promotionsService, snapshotRepo, cfg.WhatsAppNumber, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:    catalogService,
		PromotionsSvc: promotionsService,
		CheckoutSvc:   checkoutService,
	}, httpserver.Options{
		AdminToken:   cfg.AdminToken,
		AllowOrigins: cfg.CORSOrigins,
	})
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
