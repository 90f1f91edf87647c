package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"goalpool/internal/permission"
	"goalpool/pkg/responses"
	"goalpool/pkg/token"
)

const (
	AuthUserIDKey = "auth_user_id"
)

// AuthMiddleware validates the Bearer token and re-checks the user row: the
// token is a convenience, the users table is the source of truth. Blocked
// users are rejected here so no handler has to repeat the check.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		var row struct {
			Role   string
			Status string
		}
		err = db.Table("users").
			Select("role, status").
			Where("id = ? AND deleted_at IS NULL", claims.UserID).
			Scan(&row).Error
		if err != nil || row.Role == "" {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}
		if row.Status == "blocked" {
			responses.Forbidden(c, "המשתמש חסום")
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		permission.SetRole(c, permission.Role(row.Role))
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user ID from the context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}
