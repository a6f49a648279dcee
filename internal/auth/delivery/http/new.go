package http

import (
	"github.com/gin-gonic/gin"

	"cloud-srv/internal/auth"
	"cloud-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
	Logout(c *gin.Context)
}

// handler - HTTP handler implementation
type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler
func New(l log.Logger, uc auth.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
