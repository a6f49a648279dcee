package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"cloud-srv/internal/audit"
	authHTTP "cloud-srv/internal/auth/delivery/http"
	authPostgre "cloud-srv/internal/auth/repository/postgre"
	authUsecase "cloud-srv/internal/auth/usecase"
)

// setupAuthDomain initializes the auth domain (repo -> usecase -> delivery)
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, r *gin.RouterGroup) {
	repo := authPostgre.New(srv.l, srv.postgresDB)
	publisher := audit.New(srv.l, srv.producer)

	uc := authUsecase.New(srv.l, repo, srv.jwtManager, publisher)

	handler := authHTTP.New(srv.l, uc)
	authHTTP.MapAuthRoutes(r, handler)

	srv.l.Infof(ctx, "Auth domain registered")
}
