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
	"cloud-srv/pkg/authsrv"
	pkgHTTP "cloud-srv/pkg/http"
	pkgJWT "cloud-srv/pkg/jwt"
	"cloud-srv/pkg/kafka"
	"cloud-srv/pkg/log"
	pkgMinio "cloud-srv/pkg/minio"
	pkgRedis "cloud-srv/pkg/redis"
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

	logger.Info(ctx, "Starting File Service...")

	// JWT manager. Same secret and issuer as the auth service; a malformed
	// secret is fatal here too.
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

	// Redis
	redisClient, err := pkgRedis.New(pkgRedis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Info(ctx, "Redis client initialized")

	// MinIO
	minioClient, err := pkgMinio.New(pkgMinio.Config{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		UseSSL:    cfg.MinIO.UseSSL,
		Region:    cfg.MinIO.Region,
		Bucket:    cfg.MinIO.Bucket,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create MinIO client: %v", err)
		return
	}
	if err := minioClient.EnsureBucket(ctx); err != nil {
		logger.Errorf(ctx, "Failed to ensure MinIO bucket: %v", err)
		return
	}
	logger.Info(ctx, "MinIO client initialized")

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

	// Auth service client with timeout, bounded retries and a circuit breaker
	authClient := authsrv.New(authsrv.Config{
		BaseURL: cfg.AuthService.URL,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:   time.Duration(cfg.AuthService.TimeoutSeconds) * time.Second,
			Retries:   cfg.AuthService.Retries,
			RetryWait: 500 * time.Millisecond,
		}),
		BreakerThreshold: cfg.AuthService.BreakerThreshold,
		BreakerCooldown:  time.Duration(cfg.AuthService.BreakerCooldownSeconds) * time.Second,
	})
	logger.Info(ctx, "Auth service client initialized")

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Service:     httpserver.ServiceFile,
		Config:      cfg,
		PostgresDB:  postgresDB,
		JWTManager:  jwtManager,
		RedisClient: redisClient,
		MinIOClient: minioClient,
		AuthClient:  authClient,
		Producer:    producer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
	}
}
