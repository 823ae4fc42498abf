package middleware

import (
	"net/http"
	"strings"

	"ovenbook/internal/domain/user"
	"ovenbook/internal/handler/httperr"
	"ovenbook/internal/pkg/cookie"
	"ovenbook/internal/pkg/errs"
	"ovenbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

var (
	errMissingToken = errs.New("missing authentication token")
	errInvalidToken = errs.New("invalid authentication token")
	errNotAdmin     = errs.New("user is not an admin")
)

// RequireAuth accepts the access token from the httpOnly cookie first, then
// falls back to a Bearer header for non-browser clients.
func RequireAuth(validator usecase.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			token = extractBearerToken(c)
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Authentication required")
			return
		}

		userID, role, err := validator.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errInvalidToken), "Authentication required")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// RequireAdmin must be chained after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentUserRole(c)
		if !ok || !role.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "User is not an admin")
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func CurrentUserRole(c *gin.Context) (user.Role, bool) {
	v, ok := c.Get(ContextUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
