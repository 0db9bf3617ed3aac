package persistence

import "time"

// Account represents a login identity for the dashboard. Accounts are
// separate from the generated dataset users; UserID links an account to the
// user record it acts as, and admin accounts may leave it empty.
type Account struct {
	ID           string
	Email        string
	DisplayName  string
	Role         string
	UserID       string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session represents an authentication session persisted for an account.
type Session struct {
	ID          string
	AccountID   string
	Token       string
	Fingerprint string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RevokedAt   *time.Time
}
