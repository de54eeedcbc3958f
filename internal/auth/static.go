package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// StaticProvider verifies tokens against a fixed token->identity table. It
// backs the tests, and in permissive mode the local dev server, where any
// bearer token is accepted as the subject id itself.
type StaticProvider struct {
	// Permissive makes unknown tokens resolve to Identity{UID: token}.
	Permissive bool

	mu       sync.Mutex
	tokens   map[string]*Identity
	accounts map[string]string
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		tokens:   make(map[string]*Identity),
		accounts: make(map[string]string),
	}
}

func (p *StaticProvider) AddToken(token string, ident *Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens[token] = ident
}

func (p *StaticProvider) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ident, ok := p.tokens[token]; ok {
		return ident, nil
	}
	if p.Permissive && token != "" {
		return &Identity{UID: token}, nil
	}
	return nil, ErrInvalidToken
}

func (p *StaticProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.accounts {
		if e == email {
			return "", fmt.Errorf("account for %s already exists", email)
		}
	}
	uid := uuid.New().String()
	p.accounts[uid] = email
	return uid, nil
}

func (p *StaticProvider) DeleteAccount(ctx context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.accounts[uid]; !ok {
		return fmt.Errorf("no account %s", uid)
	}
	delete(p.accounts, uid)
	return nil
}

// HasAccount reports whether an account with the given uid exists.
func (p *StaticProvider) HasAccount(uid string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.accounts[uid]
	return ok
}
