package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farmledger/api/internal/auth"
)

const (
	// UserIDKey is the context key for the authenticated user's id
	UserIDKey = "user_id"
)

// Auth creates a middleware that validates the Authorization bearer token and
// stores the authenticated user id in the Gin context. Requests without a
// valid token are rejected with 401 before reaching any handler.
func Auth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			requestID := GetRequestID(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":       "UNAUTHORIZED",
					"message":    "Missing bearer token",
					"request_id": requestID,
				},
			})
			return
		}

		userID, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if log := GetLogger(c); log != nil {
				log.Warn("Rejected invalid bearer token", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
			}
			requestID := GetRequestID(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":       "UNAUTHORIZED",
					"message":    "Invalid or expired token",
					"request_id": requestID,
				},
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user id from the Gin context.
// Returns uuid.Nil if the request is not authenticated.
func GetUserID(c *gin.Context) uuid.UUID {
	if val, exists := c.Get(UserIDKey); exists {
		if id, ok := val.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
