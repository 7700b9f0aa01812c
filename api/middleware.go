package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// AuthRequired verifies the bearer token and stores the caller's user ID in
// the context for the handlers behind it.
func AuthRequired(signingKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}

		userID, _, err := auth.ParseToken(signingKey, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
