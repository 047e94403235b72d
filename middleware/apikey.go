package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DetectAdmin flags requests carrying the admin API key. It never rejects.
func DetectAdmin(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(IsAdminKey, validKey(c.GetHeader("X-API-KEY"), apiKey))
		c.Next()
	}
}

// RequireAdmin rejects requests without the admin API key.
func RequireAdmin(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !validKey(c.GetHeader("X-API-KEY"), apiKey) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			return
		}
		c.Set(IsAdminKey, true)
		c.Next()
	}
}

// IsAdmin reports whether the request was authenticated with the admin key.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(IsAdminKey)
}

func validKey(got, want string) bool {
	if got == "" || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
