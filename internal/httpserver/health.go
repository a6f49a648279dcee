package httpserver

import (
	"net/http"

	"cloud-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const healthVersion = "1.0.0"

// healthCheck reports that the process is up.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": healthVersion,
		"service": srv.service,
	})
}

// readyCheck verifies the service's backing stores before reporting ready.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not ready",
			"message": "Database connection failed",
		})
		return
	}

	if srv.service == ServiceFile {
		if err := srv.redisClient.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Redis connection failed",
			})
			return
		}
		if err := srv.minioClient.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Object storage connection failed",
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": healthVersion,
		"service": srv.service,
	})
}

// liveCheck reports liveness without touching any dependency.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": healthVersion,
		"service": srv.service,
	})
}
