package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/email"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/offers"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	flightRepo := repository.NewFlightRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	var offersClient flights.OffersClient
	if cfg.Offers.BaseURL != "" {
		offersClient = offers.NewClient(cfg.Offers.BaseURL, cfg.Offers.APIKey)
	}
	flightService := flights.NewFlightService(flightRepo, nil, offersClient)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}
			user, err := userRepo.GetByID(ctx, event.UserID)
			if err != nil {
				log.Printf("lookup user %d: %v", event.UserID, err)
				return nil
			}
			return emailSender.Send(ctx, user.Email, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	syncEvery := time.Duration(cfg.Worker.OffersSyncMinutes) * time.Minute
	if syncEvery <= 0 {
		syncEvery = time.Hour
	}
	syncTicker := time.NewTicker(syncEvery)
	defer syncTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-syncTicker.C:
			added, err := flightService.SyncOffers(ctx)
			if err != nil {
				log.Printf("sync offers error: %v", err)
				continue
			}
			if added > 0 {
				log.Printf("synced %d offers into the catalog", added)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
