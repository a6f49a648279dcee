package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Both binaries load the same file;
// each uses the sections it needs.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - credentials (auth service), file metadata (file service)
	Postgres PostgresConfig

	// Redis - file list cache
	Redis RedisConfig

	// MinIO - file blobs
	MinIO MinIOConfig

	// Kafka - audit events (optional)
	Kafka KafkaConfig

	// JWT - token issuance and verification (same secret/issuer everywhere)
	JWT JWTConfig

	// Upload limits
	Upload UploadConfig

	// AuthService - file service's client for login/register proxying
	AuthService AuthServiceConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// KafkaConfig is the configuration for Kafka. Empty brokers disable audit
// event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// JWTConfig carries the shared signing secret (base64), issuer, access token
// TTL in minutes, and the custom token header name.
type JWTConfig struct {
	Secret           string
	Issuer           string
	AccessTTLMinutes int
	Header           string
}

// UploadConfig carries upload limits.
type UploadConfig struct {
	MaxFileSizeBytes int64
}

// AuthServiceConfig configures the file service's auth service client.
type AuthServiceConfig struct {
	URL                    string
	TimeoutSeconds         int
	Retries                int
	BreakerThreshold       int
	BreakerCooldownSeconds int
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("cloud-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/cloud/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.AccessTTLMinutes = viper.GetInt("jwt.access_ttl_minutes")
	cfg.JWT.Header = viper.GetString("jwt.header")

	cfg.Upload.MaxFileSizeBytes = viper.GetInt64("upload.max_file_size_bytes")

	cfg.AuthService.URL = viper.GetString("auth_service.url")
	cfg.AuthService.TimeoutSeconds = viper.GetInt("auth_service.timeout")
	cfg.AuthService.Retries = viper.GetInt("auth_service.retries")
	cfg.AuthService.BreakerThreshold = viper.GetInt("auth_service.breaker_threshold")
	cfg.AuthService.BreakerCooldownSeconds = viper.GetInt("auth_service.breaker_cooldown")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "cloud")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "cloud-files")

	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "cloud.audit")

	viper.SetDefault("jwt.issuer", "cloud-storage")
	viper.SetDefault("jwt.access_ttl_minutes", 30)
	viper.SetDefault("jwt.header", "auth-token")

	viper.SetDefault("upload.max_file_size_bytes", 10*1024*1024)

	viper.SetDefault("auth_service.url", "http://localhost:8081")
	viper.SetDefault("auth_service.timeout", 5)
	viper.SetDefault("auth_service.retries", 2)
	viper.SetDefault("auth_service.breaker_threshold", 5)
	viper.SetDefault("auth_service.breaker_cooldown", 30)
}

func validate(cfg *Config) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if cfg.JWT.AccessTTLMinutes <= 0 {
		return fmt.Errorf("jwt.access_ttl_minutes must be positive")
	}
	if cfg.JWT.Header == "" {
		return fmt.Errorf("jwt.header is required")
	}
	if cfg.Upload.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("upload.max_file_size_bytes must be positive")
	}
	return nil
}
