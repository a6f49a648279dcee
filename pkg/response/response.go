package response

import (
	"errors"
	"net/http"

	pkgErrors "cloud-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given body. A nil body writes an empty 200.
func OK(c *gin.Context, data any) {
	if data == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Message writes a 200 response with a {"message": ...} body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResp{Message: message})
}

// Error maps an error to its HTTP representation. Errors that are not
// *errors.HTTPError become a generic 500; the detail stays in server logs.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, ErrorResp{Code: httpErr.Code, Message: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResp{Code: "INTERNAL_ERROR", Message: "Unexpected error"})
}

// ValidationError writes a 400 with code VALIDATION_ERROR and the binding error detail.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResp{Code: "VALIDATION_ERROR", Message: err.Error()})
}

// Unauthorized writes a 401 with code UNAUTHORIZED.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResp{Code: "UNAUTHORIZED", Message: message})
}

// PanicError writes a generic 500 after a recovered panic.
func PanicError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Code: "INTERNAL_ERROR", Message: "Unexpected error"})
}
