package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey      = "userID"
	CtxUserEmailKey   = "userEmail"
	CtxResidenceIDKey = "residenceID"
	CtxAdminKey       = "admintype"
)

// Auth is the request authorizer for protected routes. It fails closed:
// no bearer header, a bad signature, an expired or revoked token, or a
// token referencing a deleted account all reject the request before any
// resource logic runs. On success the account identity (id, email,
// residence, admin flag — never the hash) is attached to the Gin context.
func Auth(svc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "Authorization token required", nil)
			c.Abort()
			return
		}

		claims, err := svc.JWT.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "Request is not authorized", nil)
			c.Abort()
			return
		}
		if svc.IsTokenRevoked(c.Request.Context(), claims.ID) {
			response.Error[any](c, http.StatusUnauthorized, "Request is not authorized", nil)
			c.Abort()
			return
		}

		account, err := svc.GetIdentity(claims.UserID)
		if err != nil {
			if errors.Is(err, application.ErrAccountNotFound) {
				response.Error[any](c, http.StatusNotFound, "User not found", nil)
			} else {
				response.Error[any](c, http.StatusUnauthorized, "Request is not authorized", nil)
			}
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, account.ID)
		c.Set(CtxUserEmailKey, account.Email)
		c.Set(CtxResidenceIDKey, account.ResidenceID)
		c.Set(CtxAdminKey, account.AdminType)
		c.Next()
	}
}

// RequireAdmin gates staff-only routes. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxAdminKey) {
			response.Error[any](c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
