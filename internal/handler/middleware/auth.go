package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleetrent/internal/domain/person"
	"fleetrent/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxPersonIDKey   = "person_id"
	ctxPersonRoleKey = "person_role"
)

var roleHierarchy = map[person.Role]int{
	person.RoleCustomer: 1,
	person.RoleEmployee: 2,
	person.RoleAdmin:    3,
}

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		personID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxPersonIDKey, personID)
		c.Set(ctxPersonRoleKey, role)
		c.Next()
	}
}

// RequireRole allows only actors whose role is at least minRole in the
// customer < employee < admin hierarchy. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(minRole person.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetPersonRole(c)
		if !ok || roleHierarchy[role] < roleHierarchy[minRole] {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetPersonID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxPersonIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetPersonRole(c *gin.Context) (person.Role, bool) {
	v, exists := c.Get(ctxPersonRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(person.Role)
	return role, ok
}
