// Package responses defines the JSON envelope every handler returns:
// {success, data|errors, message}. Validation failures carry a field→message
// map so the UI can attach each error to the right input.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SendSuccess sends a success envelope with an optional payload.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError sends a failure envelope with no field errors.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Success: false,
		Message: message,
	})
}

// SendValidationErrors sends a 400 with the field→message map produced by a
// schema or business-rule validator.
func SendValidationErrors(c *gin.Context, message string, errors map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}

// BadRequest sends a 400 Bad Request failure.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "בקשה לא תקינה"
	}
	SendError(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 Not Found failure.
func NotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message)
}

// Unauthorized sends a 401 Unauthorized failure.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "נדרשת התחברות"
	}
	SendError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden failure.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "אין הרשאה לבצע פעולה זו"
	}
	SendError(c, http.StatusForbidden, message)
}

// Conflict sends a 409 Conflict failure.
func Conflict(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, message)
}

// InternalServerError sends a 500 failure. The underlying cause is expected
// to be logged by the caller, never surfaced to the client.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "אירעה שגיאה בלתי צפויה בשרת"
	}
	SendError(c, http.StatusInternalServerError, message)
}
