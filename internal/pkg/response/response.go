package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the API's failure body: a single error string. The
// message set per endpoint is stable; clients test against it.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ValidationError reports rejected input with per-field details
// before anything reaches the storage layer.
func ValidationError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": details,
	})
}
