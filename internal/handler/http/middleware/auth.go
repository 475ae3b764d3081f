package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextEmail    = "email"
	ContextRole     = "role"
)

// AuthMiddleware verifies the bearer access token and, when roles are given,
// requires the caller to hold one of them.
func AuthMiddleware(jwtService usecase.JWTService, roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abort(c, http.StatusUnauthorized, "unauthorized: missing access token")
			return
		}

		claims, err := jwtService.ParseAccessToken(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "unauthorized: invalid or expired access token")
			return
		}

		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			abort(c, http.StatusForbidden, "forbidden: insufficient permissions")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func hasRole(role entity.UserRole, allowed []entity.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"statusCode": status,
		"message":    message,
	})
}
