package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware authenticates the caller as exactly one member and puts
// the identity into the request context. No ambient global state: every
// handler reads the identity from its own context.
func Middleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "kind": "auth"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format", "kind": "auth"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty", "kind": "auth"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired", "kind": "auth"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token", "kind": "auth"})
			}
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required", "kind": "auth"})
			c.Abort()
			return
		}

		c.Set("member_id", claims.MemberID)
		c.Set("member_email", claims.Email)
		c.Set("member_role", claims.Role)

		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("member_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Member role not found", "kind": "auth"})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions", "kind": "auth"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetMemberID(c *gin.Context) (int, bool) {
	memberID, exists := c.Get("member_id")
	if !exists {
		return 0, false
	}

	id, ok := memberID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}
