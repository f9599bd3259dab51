package middleware

import (
	"net/http"
	"strings"

	userRepo "groomly/database/repository/user"
	"groomly/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token, checks its hash against the
// stored one (so sign-out revokes it), and puts the user's identity into
// the request context. A cached auth session carrying the same token hash
// answers without a user lookup; the user store is the fallback and the
// source of truth.
func AuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		computedHash := utils.HashToken(tokenString)

		if cache := utils.AuthCacheClient; cache != nil {
			if sess, err := utils.LoadAuthSession(cache, userID); err == nil && sess.TokenHash == computedHash {
				c.Set("userID", sess.UserID)
				c.Set("userRole", sess.Role)
				c.Next()
				return
			}
		}

		user, err := repo.GetByTokenHash(computedHash)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token mismatch or user not found"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(c *gin.Context) string {
	return c.GetString("userID")
}

// UserRole returns the authenticated user's role from the request context.
func UserRole(c *gin.Context) string {
	return c.GetString("userRole")
}
