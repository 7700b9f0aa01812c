package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightdesk/api"
	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/bootstrap"
	"github.com/Domenick1991/flightdesk/internal/cache"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/offers"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/auth"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	var offersClient flights.OffersClient
	if cfg.Offers.BaseURL != "" {
		offersClient = offers.NewClient(cfg.Offers.BaseURL, cfg.Offers.APIKey)
	}

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache, offersClient)
	bookingService := booking.NewBookingService(bookingRepo, flightRepo, redisCache, producer, cfg.Kafka.NotificationsTopic)
	authService := auth.NewAuthService(userRepo, cfg.Auth.SigningKey, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute, cfg.Auth.BcryptCost)

	if cfg.Catalog.SeedOnStart {
		if err := flightService.SeedIfEmpty(ctx); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
	}

	authHandler := api.NewAuthHandler(authService)
	flightHandler := api.NewFlightHandler(flightService)
	bookingHandler := api.NewBookingHandler(bookingService)

	if err := bootstrap.Run(ctx, cfg, authHandler, flightHandler, bookingHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
