package middleware

import (
	"net/http"
	"strings"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthAdminMiddleware validates the bearer token's signature and role and
// checks that its session is still active in Redis, so a token can be revoked
// before it expires.
func JWTAuthAdminMiddleware(sessions *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		active, err := utils.AdminSessionExists(sessions, tokenHash)
		if err != nil || !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("adminTokenHash", tokenHash)
		c.Set("isAdmin", true)
		c.Next()
	}
}
