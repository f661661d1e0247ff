package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edgecore/api-gateway/internal/api/metrics"
	"github.com/edgecore/api-gateway/internal/core/domain"
)

// Forwarder relays a request to a backend base URL.
type Forwarder interface {
	Forward(c echo.Context, target string) error
}

// ProxyHandler resolves the route table entry for the request path and
// forwards to its backend. An unmatched or catch-all path under /api yields
// the synthetic JSON 404; a transport failure yields 502. The backend's own
// status, including 404, is relayed verbatim.
type ProxyHandler struct {
	forwarder Forwarder
	table     *domain.RouteTable
}

func NewProxyHandler(forwarder Forwarder, table *domain.RouteTable) *ProxyHandler {
	return &ProxyHandler{forwarder: forwarder, table: table}
}

func (h *ProxyHandler) Dispatch(c echo.Context) error {
	path := c.Request().URL.Path

	entry, ok := h.table.Match(path)
	if !ok || entry.Kind == domain.RouteCatchAll {
		return echo.NewHTTPError(http.StatusNotFound, "API endpoint not found")
	}

	if err := h.forwarder.Forward(c, entry.Target); err != nil {
		if errors.Is(err, domain.ErrBackendUnavail) {
			metrics.ProxyErrorsTotal.WithLabelValues(entry.Name).Inc()
		}
		return err
	}
	return nil
}
