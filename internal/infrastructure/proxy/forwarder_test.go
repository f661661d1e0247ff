package proxy

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/edgecore/api-gateway/internal/core/domain"
)

func TestForwarder_RelaysRequestAndResponse(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/orders/42" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("authorization header not forwarded")
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"qty":1}` {
			t.Errorf("body not forwarded: %s", body)
		}
		w.Header().Set("X-Backend", "orders")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"42"}`))
	}))
	defer backend.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/42?fast=1", strings.NewReader(`{"qty":1}`))
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	f := NewForwarder(time.Second, zerolog.Nop())
	if err := f.Forward(c, backend.URL); err != nil {
		t.Fatalf("forward error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Header().Get("X-Backend") != "orders" {
		t.Fatalf("backend headers not relayed")
	}
	if rec.Body.String() != `{"id":"42"}` {
		t.Fatalf("backend body not relayed: %s", rec.Body.String())
	}
}

func TestForwarder_RelaysBackendNotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer backend.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/none", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	f := NewForwarder(time.Second, zerolog.Nop())
	if err := f.Forward(c, backend.URL); err != nil {
		t.Fatalf("forward error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected backend 404 relayed, got %d", rec.Code)
	}
}

func TestForwarder_BackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // nothing listening anymore

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	f := NewForwarder(time.Second, zerolog.Nop())
	err := f.Forward(c, backend.URL)
	if !errors.Is(err, domain.ErrBackendUnavail) {
		t.Fatalf("expected ErrBackendUnavail, got %v", err)
	}
}

func TestForwarder_Timeout(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer backend.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slow", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	f := NewForwarder(20*time.Millisecond, zerolog.Nop())
	err := f.Forward(c, backend.URL)
	if !errors.Is(err, domain.ErrBackendUnavail) {
		t.Fatalf("expected ErrBackendUnavail on timeout, got %v", err)
	}
}
