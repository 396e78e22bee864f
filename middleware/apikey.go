package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards /admin routes. A request passes with either the
// X-API-KEY header matching ADMIN_API_KEY or a valid admin bearer token.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey != "" && apiKey == os.Getenv("ADMIN_API_KEY") {
		c.Next()
		return
	}

	if validateBearerToken(c) {
		c.Next()
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
	c.Abort()
}
