package respond

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/telemetry"
)

// ErrorBody is the standardized error object.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
}

// Error sends a standardized error response and aborts the request.
func Error(c *gin.Context, status int, message, details string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorBody{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Details:   details,
	})
}

// ValidationError sends a field-to-message mapping with status 400.
func ValidationError(c *gin.Context, fields map[string]string) {
	telemetry.Error("http.validation_error", map[string]any{
		"status":     http.StatusBadRequest,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
		"fields":     fields,
	})
	c.AbortWithStatusJSON(http.StatusBadRequest, fields)
}
