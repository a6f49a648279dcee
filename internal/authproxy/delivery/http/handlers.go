package http

import (
	"errors"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"cloud-srv/pkg/authsrv"
	pkgErrors "cloud-srv/pkg/errors"
	"cloud-srv/pkg/response"
)

var errAuthServiceUnavailable = pkgErrors.NewHTTPError(
	nethttp.StatusServiceUnavailable, "AUTH_SERVICE_UNAVAILABLE", "Auth service is unavailable")

// relay forwards the auth service's exact status and body. A transport
// failure or open breaker becomes a 503 instead of an opaque 500.
func (h *handler) relay(c *gin.Context, result authsrv.Result, err error) {
	if err != nil {
		h.l.Errorf(c.Request.Context(), "authproxy.delivery.http.relay: call failed: %v", err)
		if errors.Is(err, authsrv.ErrUnavailable) {
			response.Error(c, errAuthServiceUnavailable)
			return
		}
		response.Error(c, err)
		return
	}
	c.Data(result.Status, "application/json", result.Body)
}

func (h *handler) processCredentials(c *gin.Context) (authsrv.Credentials, error) {
	var creds authsrv.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		h.l.Errorf(c.Request.Context(), "authproxy.delivery.http.processCredentials: ShouldBindJSON failed: %v", err)
		return creds, err
	}
	return creds, nil
}

// Login handles POST /cloud/login on the file service
func (h *handler) Login(c *gin.Context) {
	creds, err := h.processCredentials(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.client.Login(c.Request.Context(), creds)
	h.relay(c, result, err)
}

// Register handles POST /cloud/register on the file service
func (h *handler) Register(c *gin.Context) {
	creds, err := h.processCredentials(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.client.Register(c.Request.Context(), creds)
	h.relay(c, result, err)
}

// Logout handles POST /cloud/logout on the file service
func (h *handler) Logout(c *gin.Context) {
	result, err := h.client.Logout(c.Request.Context())
	h.relay(c, result, err)
}
