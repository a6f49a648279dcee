package http

import (
	"github.com/gin-gonic/gin"
)

// MapAuthProxyRoutes maps the proxied credential endpoints. All three are
// public on the file service as well.
func MapAuthProxyRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
}
