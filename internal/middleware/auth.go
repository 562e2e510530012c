package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-planner-api/internal/auth"
	"daily-planner-api/internal/models"
	"daily-planner-api/internal/planner"
)

// Context keys set by SessionAuth.
const (
	IdentityKey = "identity"
	EmailKey    = "email"
)

// SessionSource reports the identity that is currently logged in.
type SessionSource interface {
	Identity() (models.Identity, bool)
}

// SessionAuth validates the bearer token and requires it to belong to the active identity.
// A token that outlived a logout or a login as someone else is rejected.
func SessionAuth(signer *auth.Signer, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		// Fallback for WebSocket/browser where custom headers cannot be set: allow token in query param
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		claims, err := signer.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		active, ok := sessions.Identity()
		if !ok || !planner.SameIdentity(active, claims.Identity()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			return
		}

		c.Set(IdentityKey, active)
		c.Set(EmailKey, active.Email)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by SessionAuth.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}
