package respond

import (
	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every error: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs and sends a standardized error response, aborting the request.
func Error(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
