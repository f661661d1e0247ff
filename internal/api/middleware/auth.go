package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edgecore/api-gateway/internal/api/metrics"
	"github.com/edgecore/api-gateway/internal/core/domain"
	"github.com/edgecore/api-gateway/internal/core/ports"
)

// bearerPrefix is matched case-sensitively: "Basic", "bearer", and "Token"
// schemes are rejected even when the token value itself would verify.
const bearerPrefix = "Bearer "

// Auth validates the bearer token and injects verified claims into context.
// On any failure the chain halts with a 401 JSON body; the wrapped handler
// is never invoked.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization scheme must be Bearer")
			}
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues("empty_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "empty bearer token")
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired_token"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set("claims", claims)
			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("roles", claims.Roles)

			return next(c)
		}
	}
}
