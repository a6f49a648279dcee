package httpserver

import (
	"database/sql"
	"errors"

	"cloud-srv/config"
	"cloud-srv/pkg/authsrv"
	pkgJWT "cloud-srv/pkg/jwt"
	pkgKafka "cloud-srv/pkg/kafka"
	"cloud-srv/pkg/log"
	pkgMinio "cloud-srv/pkg/minio"
	pkgRedis "cloud-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Service selects which domain set the server maps.
const (
	ServiceAuth = "auth"
	ServiceFile = "file"
)

type HTTPServer struct {
	// Server Configuration
	gin     *gin.Engine
	l       log.Logger
	host    string
	port    int
	mode    string
	service string

	config *config.Config

	// Database Configuration
	postgresDB *sql.DB

	// Authentication & Security Configuration
	jwtManager pkgJWT.IManager

	// File service dependencies
	redisClient pkgRedis.IRedis
	minioClient pkgMinio.MinIO
	authClient  authsrv.IAuthService

	// Audit event publishing (optional)
	producer pkgKafka.IProducer
}

type Config struct {
	// Server Configuration
	Host    string
	Port    int
	Mode    string
	Service string

	Config *config.Config

	// Database Configuration
	PostgresDB *sql.DB

	// Authentication & Security Configuration
	JWTManager pkgJWT.IManager

	// File service dependencies
	RedisClient pkgRedis.IRedis
	MinIOClient pkgMinio.MinIO
	AuthClient  authsrv.IAuthService

	// Audit event publishing (optional)
	Producer pkgKafka.IProducer
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:       logger,
		gin:     gin.New(),
		host:    cfg.Host,
		port:    cfg.Port,
		mode:    cfg.Mode,
		service: cfg.Service,

		config: cfg.Config,

		postgresDB: cfg.PostgresDB,
		jwtManager: cfg.JWTManager,

		redisClient: cfg.RedisClient,
		minioClient: cfg.MinIOClient,
		authClient:  cfg.AuthClient,

		producer: cfg.Producer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	switch srv.service {
	case ServiceAuth:
		if srv.postgresDB == nil {
			return errors.New("postgresDB is required")
		}
	case ServiceFile:
		if srv.postgresDB == nil {
			return errors.New("postgresDB is required")
		}
		if srv.redisClient == nil {
			return errors.New("redisClient is required")
		}
		if srv.minioClient == nil {
			return errors.New("minioClient is required")
		}
		if srv.authClient == nil {
			return errors.New("authClient is required")
		}
	default:
		return errors.New("service must be auth or file")
	}

	// producer is optional: no brokers configured means no audit events

	return nil
}
