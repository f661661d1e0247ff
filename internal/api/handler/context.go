package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edgecore/api-gateway/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: a non-empty subject proves the
// middleware ran and verified the token.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get("claims").(*domain.Claims)
	if claims == nil || claims.UserID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
