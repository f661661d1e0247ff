package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/edgecore/api-gateway/internal/api/metrics"
	"github.com/edgecore/api-gateway/internal/core/domain"
	"github.com/edgecore/api-gateway/internal/core/ports"
)

// ErrorLogHandler exposes the error log store as an operational surface.
// It is a debug interface, not a security boundary, and is deliberately
// unauthenticated.
type ErrorLogHandler struct {
	store ports.ErrorLogStore
}

func NewErrorLogHandler(store ports.ErrorLogStore) *ErrorLogHandler {
	return &ErrorLogHandler{store: store}
}

type errorLogResponse struct {
	Entries []domain.ErrorLogEntry `json:"entries"`
	Count   int                    `json:"count"`
}

// List answers GET /api/logs/errors, optionally filtered by ?path= and
// ?status=.
//
// @Summary      Query error log entries
// @Tags         logs
// @Produce      json
// @Param        path    query     string  false  "Exact request path filter"
// @Param        status  query     int     false  "HTTP status filter"
// @Success      200     {object}  errorLogResponse
// @Router       /api/logs/errors [get]
func (h *ErrorLogHandler) List(c echo.Context) error {
	filter := domain.ErrorLogFilter{Path: c.QueryParam("path")}
	if s := c.QueryParam("status"); s != "" {
		status, err := strconv.Atoi(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "status filter must be numeric")
		}
		filter.Status = status
	}

	entries := h.store.Entries(filter)
	return c.JSON(http.StatusOK, errorLogResponse{Entries: entries, Count: len(entries)})
}

// Clear answers DELETE /api/logs/errors and empties the store.
//
// @Summary      Clear the error log
// @Tags         logs
// @Success      204  "cleared"
// @Router       /api/logs/errors [delete]
func (h *ErrorLogHandler) Clear(c echo.Context) error {
	h.store.Clear()
	metrics.ErrorLogSize.Set(0)
	return c.NoContent(http.StatusNoContent)
}
