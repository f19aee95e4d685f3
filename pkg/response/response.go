package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
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

// Error sends error response. An *HTTPError keeps its own status;
// anything else is a 400 with the error message.
func Error(c *gin.Context, err error, data map[string]any) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		ErrorWithStatus(c, httpErr.Status, httpErr.Code, httpErr.Message, data)
		return
	}

	if data == nil {
		data = make(map[string]any)
	}
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: BadRequestErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// ErrorWithStatus sends an error envelope with an explicit status and code.
func ErrorWithStatus(c *gin.Context, status, code int, message string, data any) {
	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   message,
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   TooManyRequestsMessage,
	})
}
