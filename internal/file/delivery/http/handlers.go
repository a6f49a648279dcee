package http

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "cloud-srv/pkg/errors"
	"cloud-srv/pkg/response"
)

// respondProcessError distinguishes validation failures from already-mapped
// HTTP errors raised while processing the request.
func (h *handler) respondProcessError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		response.Error(c, err)
		return
	}
	response.ValidationError(c, err)
}

// Upload handles POST /cloud/file
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadReq(c)
	if err != nil {
		h.respondProcessError(c, err)
		return
	}

	part, err := req.Part.Open()
	if err != nil {
		h.l.Errorf(ctx, "file.delivery.http.Upload: opening part failed: %v", err)
		response.Error(c, err)
		return
	}
	defer part.Close()

	if _, err := h.uc.Upload(ctx, req.toInput(part)); err != nil {
		h.l.Warnf(ctx, "file.delivery.http.Upload: upload of %q failed: %v", req.FileName, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, "File uploaded successfully")
}

// Download handles GET /cloud/file
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFileReq(c)
	if err != nil {
		h.respondProcessError(c, err)
		return
	}

	output, err := h.uc.Download(ctx, downloadInput(req))
	if err != nil {
		h.l.Warnf(ctx, "file.delivery.http.Download: download of %q failed: %v", req.FileName, err)
		response.Error(c, h.mapError(err))
		return
	}
	defer output.Reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", output.File.FileName),
	}
	c.DataFromReader(nethttp.StatusOK, output.File.Size, output.File.ContentType, output.Reader, extraHeaders)
}

// Delete handles DELETE /cloud/file
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFileReq(c)
	if err != nil {
		h.respondProcessError(c, err)
		return
	}

	if err := h.uc.Delete(ctx, deleteInput(req)); err != nil {
		h.l.Warnf(ctx, "file.delivery.http.Delete: delete of %q failed: %v", req.FileName, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, "File deleted successfully")
}

// Rename handles PUT /cloud/file
func (h *handler) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRenameReq(c)
	if err != nil {
		h.respondProcessError(c, err)
		return
	}

	if err := h.uc.Rename(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "file.delivery.http.Rename: rename of %q failed: %v", req.OldName, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, "File renamed successfully")
}

// List handles GET /cloud/list
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		h.respondProcessError(c, err)
		return
	}

	files, err := h.uc.List(ctx, listInput(req))
	if err != nil {
		h.l.Errorf(ctx, "file.delivery.http.List: list failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(files))
}
