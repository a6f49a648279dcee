package http

import (
	"github.com/gin-gonic/gin"

	"cloud-srv/internal/middleware"
)

// MapFileRoutes maps the file endpoints. Every route requires a valid token.
func MapFileRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())
	{
		r.POST("/file", h.Upload)
		r.GET("/file", h.Download)
		r.DELETE("/file", h.Delete)
		r.PUT("/file", h.Rename)
		r.GET("/list", h.List)
	}
}
