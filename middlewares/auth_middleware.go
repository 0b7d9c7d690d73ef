package middlewares

import (
	"net/http"
	"strings"

	"github.com/NutritionScanner/nutrivision-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the username it
// was issued for under the "username" context key.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := utils.ParseSubject(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
