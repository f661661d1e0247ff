package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edgecore/api-gateway/internal/core/domain"
)

// RBAC enforces role-based access control on routes already behind Auth.
// Every required role must be present in the verified claims; an
// authenticated caller with an insufficient role gets 403.
func RBAC(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get("claims").(*domain.Claims)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !claims.HasAllRoles(required) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
