package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "auth.delivery.http.processLoginReq: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "auth.delivery.http.processRegisterReq: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
