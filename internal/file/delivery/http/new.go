package http

import (
	"github.com/gin-gonic/gin"

	"cloud-srv/internal/file"
	"cloud-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	Upload(c *gin.Context)
	Download(c *gin.Context)
	Delete(c *gin.Context)
	Rename(c *gin.Context)
	List(c *gin.Context)
}

// handler - HTTP handler implementation
type handler struct {
	l  log.Logger
	uc file.UseCase
}

// New creates a new HTTP handler
func New(l log.Logger, uc file.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
