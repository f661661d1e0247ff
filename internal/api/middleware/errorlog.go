package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/edgecore/api-gateway/internal/api/metrics"
	"github.com/edgecore/api-gateway/internal/core/domain"
	"github.com/edgecore/api-gateway/internal/core/ports"
)

// ErrorLog observes the finalized response status of every request and
// records an entry for each status >= 400. It must be the outermost layer
// of the chain so auth rejections, synthetic 404s, proxy 502s, and handler
// errors are all captured uniformly; 2xx and 3xx responses are never logged.
func ErrorLog(store ports.ErrorLogStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// render through the central error handler so the status
				// below is the one the client actually receives
				c.Error(err)
			}

			status := c.Response().Status
			if status < http.StatusBadRequest {
				return nil
			}

			entry := domain.ErrorLogEntry{
				Timestamp: time.Now().UTC(),
				Method:    c.Request().Method,
				Path:      c.Request().URL.Path,
				Status:    status,
				ClientIP:  c.RealIP(),
				Latency:   time.Since(start).String(),
			}
			store.Append(entry)

			metrics.ErrorLogEntriesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
			metrics.ErrorLogSize.Set(float64(store.Size()))

			log.Warn().
				Str("method", entry.Method).
				Str("path", entry.Path).
				Int("status", entry.Status).
				Str("client_ip", entry.ClientIP).
				Str("latency", entry.Latency).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request failed")

			return nil
		}
	}
}
