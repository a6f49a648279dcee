package http

import (
	"github.com/gin-gonic/gin"

	"cloud-srv/pkg/authsrv"
	"cloud-srv/pkg/log"
)

// Handler relays the credential endpoints to the auth service so clients can
// talk to a single host.
type Handler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
	Logout(c *gin.Context)
}

// handler - HTTP handler implementation
type handler struct {
	l      log.Logger
	client authsrv.IAuthService
}

// New creates a new HTTP handler
func New(l log.Logger, client authsrv.IAuthService) Handler {
	return &handler{
		l:      l,
		client: client,
	}
}
