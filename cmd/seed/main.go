package main

import (
	"context"
	"log"
	"os"

	"hunargaatha-storefront/internal/config"
	"hunargaatha-storefront/internal/db"
	productrepo "hunargaatha-storefront/internal/repository/product"
	"hunargaatha-storefront/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	mongoDB, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatalf("connect to mongo: %v", err)
	}
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Printf("mongo disconnect: %v", err)
		}
	}()

	if err := seed.Apply(ctx, productrepo.NewMongo(mongoDB, logger)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
