package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edgecore/api-gateway/internal/core/domain"
	"github.com/edgecore/api-gateway/internal/infrastructure/logstore"
)

func seededStore() *logstore.Memory {
	store := logstore.NewMemory()
	store.Append(domain.ErrorLogEntry{
		Timestamp: time.Now().UTC(), Method: "GET", Path: "/api/a", Status: 404,
		ClientIP: "127.0.0.1", Latency: "1ms",
	})
	store.Append(domain.ErrorLogEntry{
		Timestamp: time.Now().UTC(), Method: "POST", Path: "/api/b", Status: 502,
		ClientIP: "127.0.0.1", Latency: "2ms",
	})
	return store
}

func TestErrorLogHandler_List(t *testing.T) {
	e := echo.New()
	h := NewErrorLogHandler(seededStore())

	req := httptest.NewRequest(http.MethodGet, "/api/logs/errors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Entries []domain.ErrorLogEntry `json:"entries"`
		Count   int                    `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 || len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", resp)
	}
}

func TestErrorLogHandler_ListFiltered(t *testing.T) {
	e := echo.New()
	h := NewErrorLogHandler(seededStore())

	req := httptest.NewRequest(http.MethodGet, "/api/logs/errors?path=/api/a&status=404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Entries []domain.ErrorLogEntry `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].Path != "/api/a" {
		t.Fatalf("unexpected filter result: %+v", resp.Entries)
	}
}

func TestErrorLogHandler_ListBadStatusFilter(t *testing.T) {
	e := echo.New()
	h := NewErrorLogHandler(seededStore())

	req := httptest.NewRequest(http.MethodGet, "/api/logs/errors?status=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestErrorLogHandler_Clear(t *testing.T) {
	e := echo.New()
	store := seededStore()
	h := NewErrorLogHandler(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/logs/errors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Clear(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if store.Size() != 0 {
		t.Fatalf("store not cleared: %d entries", store.Size())
	}
}
