package middleware

import (
	"net/http"

	"github.com/erp/erp-system/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	Logger *zap.Logger
	// OnDenied is called when permission is denied (optional)
	OnDenied func(c *gin.Context, requiredPerms []string)
}

// RequireAnyPermission creates middleware that requires any of the specified permissions.
// Administrators always pass and an empty list only requires authentication.
func RequireAnyPermission(permissions ...string) gin.HandlerFunc {
	return RequireAnyPermissionWithConfig(PermissionConfig{}, permissions...)
}

// RequireAnyPermissionWithConfig creates any-of permission middleware with custom config
func RequireAnyPermissionWithConfig(cfg PermissionConfig, permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		grants := GetGrants(c)
		if !grants.Authenticated() {
			abortUnauthenticated(c)
			return
		}
		if !grants.HasAny(permissions...) {
			handlePermissionDenied(c, cfg, permissions, "没有访问权限")
			return
		}

		if cfg.Logger != nil {
			cfg.Logger.Debug("Permission check passed",
				zap.String("user_id", grants.UserID.String()),
				zap.Strings("required_any", permissions),
			)
		}
		c.Next()
	}
}

// RequireAdmin creates middleware that only lets administrators through
func RequireAdmin() gin.HandlerFunc {
	return RequireAdminWithConfig(PermissionConfig{})
}

// RequireAdminWithConfig creates admin-only middleware with custom config
func RequireAdminWithConfig(cfg PermissionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		grants := GetGrants(c)
		if !grants.Authenticated() {
			abortUnauthenticated(c)
			return
		}
		if !grants.IsAdministrator() {
			handlePermissionDenied(c, cfg, nil, "需要管理员权限")
			return
		}
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "未登录", c.GetString(RequestIDKey)))
}

func handlePermissionDenied(c *gin.Context, cfg PermissionConfig, required []string, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Permission denied",
			zap.String("user_id", GetJWTUserID(c)),
			zap.Strings("required", required),
			zap.String("path", c.Request.URL.Path),
		)
	}
	if cfg.OnDenied != nil {
		cfg.OnDenied(c, required)
		if c.IsAborted() {
			return
		}
	}
	c.AbortWithStatusJSON(http.StatusForbidden,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, message, c.GetString(RequestIDKey)))
}
