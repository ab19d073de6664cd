package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhle/project-tracker/internal/auth"
)

const contextUserIDKey = "user_id"

// RequireIdentity rejects requests whose caller cannot be resolved before
// any handler runs, and stores the resolved user id for the handlers.
func RequireIdentity(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.Resolve(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the id stored by RequireIdentity.
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(contextUserIDKey)
}
