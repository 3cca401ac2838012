package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userRepo "urbanpilgrim/database/repository/user"
)

// RequireRole gates a route group to accounts with the given role. It runs
// after JWTAuthMiddleware, which sets "userID".
func RequireRole(repo userRepo.UserRepository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Insufficient authorization"})
			return
		}

		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil || usr.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
