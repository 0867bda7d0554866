package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hunargaatha-storefront/internal/config"
	"hunargaatha-storefront/internal/db"
	"hunargaatha-storefront/internal/gateway"
	"hunargaatha-storefront/internal/httpserver"
	cartrepo "hunargaatha-storefront/internal/repository/cart"
	marketingrepo "hunargaatha-storefront/internal/repository/marketing"
	productrepo "hunargaatha-storefront/internal/repository/product"
	cartsvc "hunargaatha-storefront/internal/service/cart"
	checkoutsvc "hunargaatha-storefront/internal/service/checkout"
	marketingsvc "hunargaatha-storefront/internal/service/marketing"
	productsvc "hunargaatha-storefront/internal/service/product"
	webhooksvc "hunargaatha-storefront/internal/service/webhook"
	wishlistsvc "hunargaatha-storefront/internal/service/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to postgres: %v", err)
	}
	defer pool.Close()

	mongoDB, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatalf("connect to mongo: %v", err)
	}
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Printf("mongo disconnect: %v", err)
		}
	}()

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer redisClient.Close()

	productRepo := productrepo.NewMongo(mongoDB, logger)
	productService := productsvc.New(productRepo)
	cartService := cartsvc.New(cartrepo.NewRedis(redisClient), productRepo, logger)
	wishlistService := wishlistsvc.New()
	checkoutService := checkoutsvc.New(
		gateway.NewStripe(cfg.StripeSecretKey, cfg.BaseURL),
		gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		logger,
	)
	webhookService := webhooksvc.New(cfg.StripeWebhookSecret, cfg.RazorpayKeySecret, logger)
	marketingService := marketingsvc.New(marketingrepo.NewPostgres(pool, logger))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Pool:          pool,
		Mongo:         mongoDB,
		Redis:         redisClient,
		ProductSvc:    productService,
		CartSvc:       cartService,
		WishlistSvc:   wishlistService,
		CheckoutSvc:   checkoutService,
		WebhookSvc:    webhookService,
		MarketingSvc:  marketingService,
		AllowedOrigin: cfg.AllowedOrigin,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
