package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

// Envelope is the JSON shape of every API response.
// Data is omitted on error; Message carries the error text or a confirmation.
type Envelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK sends a successful envelope. HTTP status and envelope status are the same.
func OK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Status: status, Data: data, Message: message})
}

// Error sends an error envelope.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		if appErr.Code >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.JSON(appErr.Code, Envelope{Status: appErr.Code, Message: appErr.Message})
		return
	}

	// Default to 500 for unknown errors; the cause is logged by the request logger.
	_ = c.Error(err)
	internal := apperror.Wrap(err, http.StatusInternalServerError, "internal server error")
	c.JSON(internal.Code, Envelope{Status: internal.Code, Message: internal.Message})
}

// Abort sends an error envelope with an explicit status and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Status: status, Message: message})
}
