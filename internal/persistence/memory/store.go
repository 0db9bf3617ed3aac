// Package memory provides the in-memory persistence used for the demo
// dataset, accounts, and sessions. Rounds live in SQLite; everything else
// is regenerated on startup and kept here.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

// Store keeps users, accounts, and sessions in maps guarded by a single
// lock. Users preserve insertion order because the dataset's generation
// order is meaningful to table rendering.
type Store struct {
	mu        sync.RWMutex
	users     map[string]mentorship.User
	userOrder []string
	accounts  map[string]persistence.Account
	sessions  map[string]persistence.Session
}

// Open returns an empty store.
func Open() *Store {
	return &Store{
		users:    make(map[string]mentorship.User),
		accounts: make(map[string]persistence.Account),
		sessions: make(map[string]persistence.Session),
	}
}

// Close releases resources held by the store. No-op for the in-memory
// implementation.
func (s *Store) Close() error {
	return nil
}

// --- UserRepository implementation ---

// PutUser inserts or replaces a user record.
func (s *Store) PutUser(ctx context.Context, user mentorship.User) error {
	if user.ID == "" {
		return fmt.Errorf("memory: user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		s.userOrder = append(s.userOrder, user.ID)
	}
	s.users[user.ID] = user.Clone()
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (mentorship.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return mentorship.User{}, persistence.ErrNotFound
	}
	return user.Clone(), nil
}

// ListUsers returns every user in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]mentorship.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]mentorship.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id].Clone())
	}
	return users, nil
}

// --- AccountRepository implementation ---

// CreateAccount stores a new login identity.
func (s *Store) CreateAccount(ctx context.Context, account persistence.Account) error {
	if account.ID == "" {
		return fmt.Errorf("memory: account id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; ok {
		return persistence.ErrAlreadyExists
	}
	email := normalizeEmail(account.Email)
	for _, existing := range s.accounts {
		if normalizeEmail(existing.Email) == email {
			return persistence.ErrAlreadyExists
		}
	}

	s.accounts[account.ID] = account
	return nil
}

// GetAccount retrieves an account by ID.
func (s *Store) GetAccount(ctx context.Context, id string) (persistence.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return persistence.Account{}, persistence.ErrNotFound
	}
	return account, nil
}

// GetAccountByEmail retrieves an account by its email, case-insensitively.
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (persistence.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := normalizeEmail(email)
	for _, account := range s.accounts {
		if normalizeEmail(account.Email) == needle {
			return account, nil
		}
	}
	return persistence.Account{}, persistence.ErrNotFound
}

// ListAccounts returns every account in unspecified order.
func (s *Store) ListAccounts(ctx context.Context) ([]persistence.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]persistence.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// --- SessionRepository implementation ---

// CreateSession stores a new session keyed by its token.
func (s *Store) CreateSession(ctx context.Context, session persistence.Session) (persistence.Session, error) {
	if session.Token == "" {
		return persistence.Session{}, fmt.Errorf("memory: session token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.Token]; ok {
		return persistence.Session{}, persistence.ErrAlreadyExists
	}
	s.sessions[session.Token] = cloneSession(session)
	return cloneSession(session), nil
}

// GetSession retrieves a session by token.
func (s *Store) GetSession(ctx context.Context, token string) (persistence.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return persistence.Session{}, persistence.ErrNotFound
	}
	return cloneSession(session), nil
}

// RevokeSession marks a session revoked at the given instant.
func (s *Store) RevokeSession(ctx context.Context, token string, revokedAt time.Time) (persistence.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return persistence.Session{}, persistence.ErrNotFound
	}
	if session.RevokedAt == nil {
		ts := revokedAt
		session.RevokedAt = &ts
		session.UpdatedAt = revokedAt
		s.sessions[token] = session
	}
	return cloneSession(session), nil
}

// DeleteExpiredSessions drops sessions whose expiry precedes the reference.
func (s *Store) DeleteExpiredSessions(ctx context.Context, reference time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if session.ExpiresAt.Before(reference) {
			delete(s.sessions, token)
		}
	}
	return nil
}

func cloneSession(session persistence.Session) persistence.Session {
	out := session
	if session.RevokedAt != nil {
		ts := *session.RevokedAt
		out.RevokedAt = &ts
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
