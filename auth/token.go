package auth

import (
	"errors"
	"strings"
	"sync"
)

// ErrNoToken is returned when a platform call is attempted before the shell
// has pushed a session token.
var ErrNoToken = errors.New("no auth token available")

// TokenSource supplies a bearer token immediately before each platform
// request. Tokens are never cached beyond the call that asked for them;
// refresh is the issuer's problem, not ours.
type TokenSource interface {
	Token() (string, error)
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() (string, error)

func (f TokenFunc) Token() (string, error) { return f() }

// StaticToken always returns the same token. Useful in tests.
type StaticToken string

func (s StaticToken) Token() (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

// TokenStore holds the most recent session token pushed by the shell. The
// shell owns the auth provider session and re-pushes whenever it rotates.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set replaces the current token. An empty token clears the store (logout).
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Token returns the current token or ErrNoToken when none has been pushed.
func (s *TokenStore) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}
