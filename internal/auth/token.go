// Package auth supplies bearer tokens to the HTTP layer. Tokens are issued
// out of band and handed to the client at construction time; nothing here
// fetches or refreshes credentials.
package auth

import (
	"context"
	"sync"
)

// TokenManager yields the bearer token to attach to outgoing requests. An
// empty token means the request is sent unauthenticated.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string)
}

// StaticTokenManager holds a caller-supplied token.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenManager creates a manager for a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the current token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, nil
}

// SetToken replaces the current token.
func (m *StaticTokenManager) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}
