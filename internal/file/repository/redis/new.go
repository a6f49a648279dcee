package redis

import (
	"time"

	"cloud-srv/internal/file/repository"
	"cloud-srv/pkg/log"
	pkgRedis "cloud-srv/pkg/redis"
)

// listTTL keeps cached listings short-lived so a lost invalidation heals fast.
const listTTL = 30 * time.Second

// implCache implements repository.Cache on Redis
type implCache struct {
	l     log.Logger
	redis pkgRedis.IRedis
}

// New creates a new Redis listing cache for the file domain
func New(l log.Logger, redisClient pkgRedis.IRedis) repository.Cache {
	return &implCache{
		l:     l,
		redis: redisClient,
	}
}
