package persistence

import (
	"context"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

// UserRepository stores the generated dashboard dataset. Implementations
// return detached copies; callers never share state with the store.
type UserRepository interface {
	PutUser(ctx context.Context, user mentorship.User) error
	GetUser(ctx context.Context, id string) (mentorship.User, error)
	ListUsers(ctx context.Context) ([]mentorship.User, error)
}

// AccountRepository stores login identities.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account Account) error
	GetAccount(ctx context.Context, id string) (Account, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
}

// SessionRepository stores authentication session state.
type SessionRepository interface {
	CreateSession(ctx context.Context, session Session) (Session, error)
	GetSession(ctx context.Context, token string) (Session, error)
	RevokeSession(ctx context.Context, token string, revokedAt time.Time) (Session, error)
	DeleteExpiredSessions(ctx context.Context, reference time.Time) error
}

// RoundRepository stores the mentorship round catalog.
type RoundRepository interface {
	CreateRound(ctx context.Context, round mentorship.Round) error
	UpdateRound(ctx context.Context, round mentorship.Round) error
	GetRound(ctx context.Context, id string) (mentorship.Round, error)
	ListRounds(ctx context.Context) ([]mentorship.Round, error)
	DeleteRound(ctx context.Context, id string) error
}
