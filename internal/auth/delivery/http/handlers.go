package http

import (
	"github.com/gin-gonic/gin"

	"cloud-srv/pkg/response"
)

// Login handles POST /cloud/login
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.delivery.http.Login: login failed for %q: %v", req.Login, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Register handles POST /cloud/register
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.uc.Register(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "auth.delivery.http.Register: register failed for %q: %v", req.Login, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Logout handles POST /cloud/logout. Tokens are stateless and carry no
// server-side session, so logout is an acknowledgement only.
func (h *handler) Logout(c *gin.Context) {
	response.OK(c, nil)
}
