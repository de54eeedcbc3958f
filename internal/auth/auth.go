package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is a verified caller: the provider's stable subject id plus the
// token claims.
type Identity struct {
	UID    string         `json:"uid"`
	Claims map[string]any `json:"claims,omitempty"`
}

// Provider is the identity service: it verifies bearer tokens and manages
// accounts.
type Provider interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
	// CreateAccount registers an account and returns its subject id.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	DeleteAccount(ctx context.Context, uid string) error
}
