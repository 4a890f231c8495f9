// Package respond centralizes the JSON wire shapes handlers write.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as JSON with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes payload as a 200 JSON response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

// Success writes the bare acknowledgement body used by delete endpoints.
func Success(c *gin.Context) {
	OK(c, gin.H{"success": true})
}
