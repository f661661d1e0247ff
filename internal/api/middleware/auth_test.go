package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edgecore/api-gateway/internal/core/domain"
	"github.com/edgecore/api-gateway/internal/core/service"
)

type stubRepo struct{ user *domain.User }

func (r *stubRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func validToken(t *testing.T) (string, *service.AuthService) {
	t.Helper()
	hash, err := service.HashPassword("pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubRepo{user: &domain.User{
		ID: "u1", Email: "alice@example.com", PasswordHash: hash, Roles: []string{domain.RoleAdmin},
	}}
	svc := service.NewAuthService(repo, "secret", time.Hour)
	token, _, err := svc.Login(context.Background(), "alice@example.com", "pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return token, svc
}

func TestAuth_ValidToken(t *testing.T) {
	token, svc := validToken(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(svc)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "u1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("email") != "alice@example.com" {
			t.Fatalf("email not set")
		}
		claims, _ := c.Get("claims").(*domain.Claims)
		if claims == nil || !claims.HasRole(domain.RoleAdmin) {
			t.Fatalf("claims not set: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, svc := validToken(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	token, svc := validToken(t)

	// the token itself is valid; the scheme alone must cause rejection
	for _, header := range []string{
		"Basic " + token,
		"bearer " + token,
		"Token " + token,
		token,
	} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(svc)(func(c echo.Context) error {
			t.Fatalf("header %q: should not reach next", header)
			return nil
		})

		err := handler(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 HTTPError, got %v", header, err)
		}
	}
}

func TestAuth_EmptyToken(t *testing.T) {
	_, svc := validToken(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, svc := validToken(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
