package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"DietPlanChatbot/internal/auth"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
)

// AuthMiddleware requires "Authorization: Bearer <token>".
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Missing Authorization Header"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid authorization header format"})
			return
		}

		authenticate(c, tokens, strings.TrimPrefix(authHeader, "Bearer "))
	}
}

// QueryAuthMiddleware reads the token from ?token=, for browser websockets that
// cannot send headers.
func QueryAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Missing token"})
			return
		}
		authenticate(c, tokens, token)
	}
}

func authenticate(c *gin.Context, tokens *auth.TokenManager, tokenString string) {
	claims, err := tokens.ValidateToken(tokenString)
	if err != nil {
		if auth.IsExpired(err) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token has expired"})
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token"})
		return
	}

	userID, err := claims.UserID()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token"})
		return
	}

	c.Set(ctxUserID, userID)
	c.Set(ctxUsername, claims.Username)
	c.Next()
}

// UserID returns the authenticated user id set by the auth middlewares.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func Username(c *gin.Context) string {
	return c.GetString(ctxUsername)
}
