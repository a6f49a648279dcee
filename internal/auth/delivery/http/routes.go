package http

import (
	"github.com/gin-gonic/gin"
)

// MapAuthRoutes maps the credential endpoints. All three are public: they are
// registered without the auth middleware and bypass token checks entirely.
func MapAuthRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
}
