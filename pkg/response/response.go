package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "personal-task-management/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their status and message;
// anything else is reported as a generic 500 so raw error text never leaks.
func Error(c *gin.Context, err error) {
	status := pkgErrors.StatusOf(err)
	if status == http.StatusInternalServerError {
		InternalError(c, err)
		return
	}
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}

// ActionOK sends {"success": true, "message": ..., ...data}.
func ActionOK(c *gin.Context, message string, data map[string]any) {
	c.JSON(http.StatusOK, ActionResp{Success: true, Message: message, Data: data})
}

// ActionError sends {"success": false, "message": ...} with the status carried
// by err (bad request, method not allowed, ...). Unknown errors become 500.
func ActionError(c *gin.Context, err error) {
	status := pkgErrors.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = DefaultErrorMessage
	}
	c.JSON(status, ActionResp{Success: false, Message: message})
}
