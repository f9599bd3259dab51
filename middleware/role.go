package middleware

import (
	"net/http"

	"groomly/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !allowed[UserRole(c)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireStylist gates a route group to stylists.
func RequireStylist() gin.HandlerFunc {
	return RequireRole(models.RoleStylist)
}

// RequireAdmin gates a route group to admins.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
