package middleware

import (
	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key handlers read the caller's id from.
const UserIDKey = "uid"

// CurrentUser injects the caller's user id into the request context. There is
// no authentication yet, so every request runs as the configured placeholder
// user; when auth lands, this is the only seam that needs replacing.
func CurrentUser(placeholderUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserIDKey, placeholderUserID)
		c.Next()
	}
}
