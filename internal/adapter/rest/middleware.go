package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenAuth returns a middleware that validates the Authorization header
// against a static API token. Requests with a missing or wrong token are
// rejected with 401 before reaching a handler.
func TokenAuth(validToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		if header != validToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Next()
	}
}
