package middleware

import (
	"cloud-srv/pkg/log"
	"cloud-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery recovers from panics, logs the error, and returns a generic 500.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorf(c.Request.Context(), "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)
				response.PanicError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
