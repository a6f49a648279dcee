package http

import (
	"errors"
	"strconv"

	"cloud-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

var (
	errBlankFilename = errors.New("filename must not be blank")
	errMissingPart   = errors.New("file part is required")
	errBadLimit      = errors.New("limit must be a positive integer")
)

// owner resolves the authenticated username. The auth middleware installs it
// before any of these handlers run.
func (h *handler) owner(c *gin.Context) (string, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	if sc.Username == "" {
		h.l.Errorf(c.Request.Context(), "file.delivery.http.owner: scope not found")
		return "", errAuthRequired
	}
	return sc.Username, nil
}

func (h *handler) processUploadReq(c *gin.Context) (uploadReq, error) {
	var req uploadReq

	owner, err := h.owner(c)
	if err != nil {
		return req, err
	}
	req.Owner = owner

	req.FileName = c.Query("filename")
	if req.FileName == "" {
		return req, errBlankFilename
	}

	part, err := c.FormFile("file")
	if err != nil {
		h.l.Errorf(c.Request.Context(), "file.delivery.http.processUploadReq: FormFile failed: %v", err)
		return req, errMissingPart
	}
	req.Part = part

	return req, nil
}

func (h *handler) processFileReq(c *gin.Context) (fileReq, error) {
	var req fileReq

	owner, err := h.owner(c)
	if err != nil {
		return req, err
	}
	req.Owner = owner

	req.FileName = c.Query("filename")
	if req.FileName == "" {
		return req, errBlankFilename
	}

	return req, nil
}

func (h *handler) processRenameReq(c *gin.Context) (renameReq, error) {
	var req renameReq

	owner, err := h.owner(c)
	if err != nil {
		return req, err
	}
	req.Owner = owner

	req.OldName = c.Query("filename")
	if req.OldName == "" {
		return req, errBlankFilename
	}

	if err := c.ShouldBindJSON(&req.Body); err != nil {
		h.l.Errorf(c.Request.Context(), "file.delivery.http.processRenameReq: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq

	owner, err := h.owner(c)
	if err != nil {
		return req, err
	}
	req.Owner = owner

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		return req, errBadLimit
	}
	req.Limit = limit

	return req, nil
}
