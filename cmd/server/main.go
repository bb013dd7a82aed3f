package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthbox-backend/internal/cache"
	"healthbox-backend/internal/checkout"
	"healthbox-backend/internal/config"
	"healthbox-backend/internal/handlers"
	"healthbox-backend/internal/payments"
	"healthbox-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	log.WithField("database", cfg.MongoDB).Info("connected to MongoDB")

	db := store.New(client.Database(cfg.MongoDB))

	var catalogCache handlers.CatalogCache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.Connect(cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, catalog cache disabled")
		} else {
			catalogCache = cache.NewCatalog(redisClient)
			log.WithField("addr", cfg.RedisAddr).Info("catalog cache enabled")
		}
	}

	secret := []byte(cfg.JWTSecret)
	intents := payments.NewClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey)
	checkoutSvc := checkout.NewService(db, log)

	router := handlers.NewRouter(handlers.RouterConfig{
		Secret:       secret,
		AllowOrigins: cfg.AllowOrigins,
		Roles:        db,
		Log:          log,

		Catalog:    handlers.NewCatalogHandler(db, catalogCache, log),
		Categories: handlers.NewCategoryHandler(db, log),
		Reviews:    handlers.NewReviewHandler(db, log),
		Cart:       handlers.NewCartHandler(db, log),
		Payments:   handlers.NewPaymentHandler(checkoutSvc, db, intents, log),
		Accounts:   handlers.NewUserHandler(db, secret, log),
		Reports:    handlers.NewReportHandler(db, log),
		Ads:        handlers.NewAdHandler(db, log),
	})

	log.WithField("port", cfg.Port).Info("HealthBox listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
