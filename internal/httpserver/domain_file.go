package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"cloud-srv/internal/audit"
	authproxyHTTP "cloud-srv/internal/authproxy/delivery/http"
	fileHTTP "cloud-srv/internal/file/delivery/http"
	filePostgre "cloud-srv/internal/file/repository/postgre"
	fileRedis "cloud-srv/internal/file/repository/redis"
	fileUsecase "cloud-srv/internal/file/usecase"
	"cloud-srv/internal/middleware"
)

// setupFileDomain initializes the file domain (repo -> usecase -> delivery)
// plus the credential proxy to the auth service.
func (srv *HTTPServer) setupFileDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	repo := filePostgre.New(srv.l, srv.postgresDB)
	cache := fileRedis.New(srv.l, srv.redisClient)
	publisher := audit.New(srv.l, srv.producer)

	uc := fileUsecase.New(srv.l, repo, cache, srv.minioClient, publisher, srv.config.Upload.MaxFileSizeBytes)

	handler := fileHTTP.New(srv.l, uc)
	proxyHandler := authproxyHTTP.New(srv.l, srv.authClient)

	// Proxy routes first: they are public and must stay outside the auth
	// middleware the file routes install on the group.
	authproxyHTTP.MapAuthProxyRoutes(r, proxyHandler)
	fileHTTP.MapFileRoutes(r, handler, mw)

	srv.l.Infof(ctx, "File domain registered")
}
