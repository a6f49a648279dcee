package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud-srv/config"
	"cloud-srv/config/postgre"
	"cloud-srv/internal/httpserver"
	pkgJWT "cloud-srv/pkg/jwt"
	"cloud-srv/pkg/kafka"
	"cloud-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Auth Service...")

	// JWT manager. A malformed signing secret is fatal: the process must not
	// serve traffic with a key it cannot use.
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}
	logger.Info(ctx, "JWT manager initialized")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Kafka producer (optional, audit events)
	var producer kafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewProducer(kafka.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available, audit events disabled: %v", err)
			producer = nil
		} else {
			defer producer.Close()
			logger.Info(ctx, "Kafka producer initialized")
		}
	}

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Host:       cfg.HTTPServer.Host,
		Port:       cfg.HTTPServer.Port,
		Mode:       cfg.HTTPServer.Mode,
		Service:    httpserver.ServiceAuth,
		Config:     cfg,
		PostgresDB: postgresDB,
		JWTManager: jwtManager,
		Producer:   producer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
	}
}
