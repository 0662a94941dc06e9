package middleware

import (
	"net/http"
	"strings"

	"github.com/lucian886/healthManagement/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

// AuthService bundles the credential checkers the middleware needs.
type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

// AuthMiddleware resolves the principal from a Bearer JWT, falling back to the
// Redis session cookie. Requests without either are rejected.
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := authSvc.JWT.Validate(tokenString)
			if err == nil {
				c.Set(UserIDKey, claims.UserID)
				c.Set(UsernameKey, claims.Username)
				c.Next()
				return
			}
		}

		if authSvc.Session != nil {
			sessionID, err := c.Cookie("session_id")
			if err == nil && sessionID != "" {
				sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
				if err == nil && sessionData != nil {
					c.Set(UserIDKey, sessionData.UserID)
					c.Set(UsernameKey, sessionData.Username)
					// Sliding expiry on every authenticated request.
					_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		c.Abort()
	}
}

// GetCurrentUserID returns the authenticated principal id.
func GetCurrentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetCurrentUsername returns the authenticated principal's username.
func GetCurrentUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(UsernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}
