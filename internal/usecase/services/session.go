package services

import (
	"sync"

	"github.com/api-sage/bankist-ledger/internal/domain"
	"github.com/google/uuid"
)

// Session tracks the single currently authenticated account. A fresh opaque
// token is issued on every successful login; logging in again simply replaces
// the session, which may switch it to another account. There is no explicit
// logout: the session ends only when the current account is closed.
type Session struct {
	mu       sync.Mutex
	token    string
	username string
}

func NewSession() *Session {
	return &Session{}
}

// Start opens a session for username and returns its token, invalidating any
// previously issued token.
func (s *Session) Start(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = uuid.NewString()
	s.username = username
	return s.token
}

// Current resolves the session token to the logged-in username.
func (s *Session) Current(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || token != s.token {
		return "", domain.ErrSessionExpired
	}
	return s.username, nil
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.username = ""
}
