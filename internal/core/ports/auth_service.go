package ports

import (
	"context"

	"github.com/edgecore/api-gateway/internal/core/domain"
)

// TokenVerifier is the narrow interface the authorization gate depends on.
// Verification is a pure computation: signature plus expiry, no I/O.
type TokenVerifier interface {
	VerifyToken(token string) (*domain.Claims, error)
}

// AuthService issues, verifies, and refreshes bearer tokens backed by the
// user store. Refresh never revokes the presented token; every issued token
// remains independently valid until its own expiry.
type AuthService interface {
	TokenVerifier
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Refresh(token string) (string, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
}
