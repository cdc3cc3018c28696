package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studentms/internal/domain/entity"
	"studentms/internal/domain/repository"
	"studentms/pkg/helpers"
	"studentms/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "userRole"
)

// Auth resolves the Bearer token to a verified identity. The user is
// re-loaded from the store so a token for a deleted account is
// rejected. On success userID and userRole are set in the Gin context.
func Auth(repo repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication failed. No token provided.", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Authentication failed. Invalid token.", nil)
			c.Abort()
			return
		}
		u, err := repo.GetByID(claims.UserID)
		if err != nil || u == nil {
			response.Error(c, http.StatusUnauthorized, "Authentication failed. User not found.", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxRoleKey, u.Role)
		c.Next()
	}
}

// RequireRole is the authorization gate: the authenticated identity
// must hold exactly the required role.
func RequireRole(required entity.Role) gin.HandlerFunc {
	msg := "Access denied. Admin privileges required."
	if required == entity.RoleStudent {
		msg = "Access denied. Student privileges required."
	}
	return func(c *gin.Context) {
		role, ok := c.Get(CtxRoleKey)
		if !ok || role.(entity.Role) != required {
			response.Error(c, http.StatusForbidden, msg, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
