package httpserver

import (
	"context"
	"fmt"

	"cloud-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.config.JWT.Header)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	cloud := srv.gin.Group("/cloud")

	switch srv.service {
	case ServiceAuth:
		srv.setupAuthDomain(ctx, cloud)
	case ServiceFile:
		srv.setupFileDomain(ctx, cloud, mw)
	default:
		return fmt.Errorf("unknown service %q", srv.service)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
