package middleware

import (
	"strings"

	"cloud-srv/internal/model"
	"cloud-srv/pkg/response"
	"cloud-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth authenticates a request from its token and installs the request scope
// into the context. Public paths (login, register, logout) are registered
// without this middleware and bypass it entirely.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// Do not re-authenticate if a scope is already installed.
		if scope.HasScope(ctx) {
			c.Next()
			return
		}

		tokenString := m.resolveToken(c)
		if tokenString == "" {
			response.Unauthorized(c, "Auth required")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Parse(tokenString)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		sc := model.Scope{
			Username: claims.Subject,
			Roles:    claims.Roles,
		}
		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))

		c.Next()
	}
}

// resolveToken reads the custom header first, then the standard bearer header.
func (m Middleware) resolveToken(c *gin.Context) string {
	if token := c.GetHeader(m.header); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
