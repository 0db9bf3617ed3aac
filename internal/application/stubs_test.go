package application

import (
	"context"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

type accountStoreStub struct {
	accounts map[string]persistence.Account
	getErr   error
}

func newAccountStoreStub(accounts ...persistence.Account) *accountStoreStub {
	stub := &accountStoreStub{accounts: make(map[string]persistence.Account)}
	for _, account := range accounts {
		stub.accounts[account.ID] = account
	}
	return stub
}

func (s *accountStoreStub) GetAccount(ctx context.Context, id string) (persistence.Account, error) {
	if s.getErr != nil {
		return persistence.Account{}, s.getErr
	}
	account, ok := s.accounts[id]
	if !ok {
		return persistence.Account{}, persistence.ErrNotFound
	}
	return account, nil
}

func (s *accountStoreStub) GetAccountByEmail(ctx context.Context, email string) (persistence.Account, error) {
	if s.getErr != nil {
		return persistence.Account{}, s.getErr
	}
	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return persistence.Account{}, persistence.ErrNotFound
}

type sessionStoreStub struct {
	sessions    map[string]persistence.Session
	createErr   error
	deleteErr   error
	deleteCalls []time.Time
}

func newSessionStoreStub() *sessionStoreStub {
	return &sessionStoreStub{sessions: make(map[string]persistence.Session)}
}

func (s *sessionStoreStub) CreateSession(ctx context.Context, session persistence.Session) (persistence.Session, error) {
	if s.createErr != nil {
		return persistence.Session{}, s.createErr
	}
	s.sessions[session.Token] = session
	return session, nil
}

func (s *sessionStoreStub) GetSession(ctx context.Context, token string) (persistence.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return persistence.Session{}, persistence.ErrNotFound
	}
	return session, nil
}

func (s *sessionStoreStub) RevokeSession(ctx context.Context, token string, revokedAt time.Time) (persistence.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return persistence.Session{}, persistence.ErrNotFound
	}
	if session.RevokedAt == nil {
		ts := revokedAt
		session.RevokedAt = &ts
		s.sessions[token] = session
	}
	return session, nil
}

func (s *sessionStoreStub) DeleteExpiredSessions(ctx context.Context, reference time.Time) error {
	s.deleteCalls = append(s.deleteCalls, reference)
	return s.deleteErr
}

type userStoreStub struct {
	users  map[string]mentorship.User
	order  []string
	getErr error
	putErr error
}

func newUserStoreStub(users ...mentorship.User) *userStoreStub {
	stub := &userStoreStub{users: make(map[string]mentorship.User)}
	for _, user := range users {
		stub.users[user.ID] = user.Clone()
		stub.order = append(stub.order, user.ID)
	}
	return stub
}

func (s *userStoreStub) GetUser(ctx context.Context, id string) (mentorship.User, error) {
	if s.getErr != nil {
		return mentorship.User{}, s.getErr
	}
	user, ok := s.users[id]
	if !ok {
		return mentorship.User{}, persistence.ErrNotFound
	}
	return user.Clone(), nil
}

func (s *userStoreStub) PutUser(ctx context.Context, user mentorship.User) error {
	if s.putErr != nil {
		return s.putErr
	}
	if _, ok := s.users[user.ID]; !ok {
		s.order = append(s.order, user.ID)
	}
	s.users[user.ID] = user.Clone()
	return nil
}

func (s *userStoreStub) ListUsers(ctx context.Context) ([]mentorship.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	out := make([]mentorship.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id].Clone())
	}
	return out, nil
}

type roundRepoStub struct {
	rounds  map[string]mentorship.Round
	order   []string
	listErr error
}

func newRoundRepoStub(rounds ...mentorship.Round) *roundRepoStub {
	stub := &roundRepoStub{rounds: make(map[string]mentorship.Round)}
	for _, round := range rounds {
		stub.rounds[round.ID] = round
		stub.order = append(stub.order, round.ID)
	}
	return stub
}

func (s *roundRepoStub) CreateRound(ctx context.Context, round mentorship.Round) error {
	if _, ok := s.rounds[round.ID]; ok {
		return persistence.ErrAlreadyExists
	}
	s.rounds[round.ID] = round
	s.order = append(s.order, round.ID)
	return nil
}

func (s *roundRepoStub) UpdateRound(ctx context.Context, round mentorship.Round) error {
	if _, ok := s.rounds[round.ID]; !ok {
		return persistence.ErrNotFound
	}
	s.rounds[round.ID] = round
	return nil
}

func (s *roundRepoStub) GetRound(ctx context.Context, id string) (mentorship.Round, error) {
	round, ok := s.rounds[id]
	if !ok {
		return mentorship.Round{}, persistence.ErrNotFound
	}
	return round, nil
}

func (s *roundRepoStub) ListRounds(ctx context.Context) ([]mentorship.Round, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]mentorship.Round, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rounds[id])
	}
	return out, nil
}

func (s *roundRepoStub) DeleteRound(ctx context.Context, id string) error {
	if _, ok := s.rounds[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(s.rounds, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
