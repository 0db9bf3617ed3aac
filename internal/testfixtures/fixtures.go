package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

var (
	accountCounter uint64
	sessionCounter uint64
	userCounter    uint64
	roundCounter   uint64
)

var referenceTime = time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ---------------------------- Account fixtures ----------------------------

// AccountFixture represents a deterministic login account record.
type AccountFixture struct {
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

// AccountOption configures the generated account fixture.
type AccountOption func(*AccountFixture)

// NewAccountFixture returns a deterministic account fixture with optional overrides.
func NewAccountFixture(opts ...AccountOption) AccountFixture {
	idx := atomic.AddUint64(&accountCounter, 1)
	id := fmt.Sprintf("account-%03d", idx)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := AccountFixture{
		ID:           id,
		Email:        fmt.Sprintf("%s@company.com", id),
		DisplayName:  fmt.Sprintf("Account %03d", idx),
		Role:         string(mentorship.RoleEmployee),
		UserID:       fmt.Sprintf("user-%03d", idx),
		PasswordHash: fmt.Sprintf("hash-%03d", idx),
		IsAdmin:      false,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithAccountID overrides the generated account ID.
func WithAccountID(id string) AccountOption {
	return func(f *AccountFixture) {
		f.ID = id
	}
}

// WithAccountEmail overrides the generated email address.
func WithAccountEmail(email string) AccountOption {
	return func(f *AccountFixture) {
		f.Email = email
	}
}

// WithAccountUserID links the account to a dataset user record.
func WithAccountUserID(userID string) AccountOption {
	return func(f *AccountFixture) {
		f.UserID = userID
	}
}

// WithAccountPasswordHash overrides the generated password hash.
func WithAccountPasswordHash(hash string) AccountOption {
	return func(f *AccountFixture) {
		f.PasswordHash = hash
	}
}

// WithAccountAdmin sets the admin flag on the generated fixture.
func WithAccountAdmin(isAdmin bool) AccountOption {
	return func(f *AccountFixture) {
		f.IsAdmin = isAdmin
		if isAdmin {
			f.Role = string(mentorship.RoleAdmin)
			f.UserID = ""
		}
	}
}

// Persistence returns the fixture as a persistence.Account value.
func (f AccountFixture) Persistence() persistence.Account {
	return persistence.Account{
		ID:           f.ID,
		Email:        f.Email,
		DisplayName:  f.DisplayName,
		Role:         f.Role,
		UserID:       f.UserID,
		PasswordHash: f.PasswordHash,
		IsAdmin:      f.IsAdmin,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// ---------------------------- Session fixtures ----------------------------

// SessionFixture represents a deterministic session record.
type SessionFixture struct {
	ID          string
	AccountID   string
	Token       string
	Fingerprint string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RevokedAt   *time.Time
}

// SessionOption configures the generated session fixture.
type SessionOption func(*SessionFixture)

// NewSessionFixture returns a deterministic session fixture with optional overrides.
func NewSessionFixture(opts ...SessionOption) SessionFixture {
	idx := atomic.AddUint64(&sessionCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := SessionFixture{
		ID:        fmt.Sprintf("session-%03d", idx),
		AccountID: fmt.Sprintf("account-%03d", idx),
		Token:     fmt.Sprintf("token-%03d", idx),
		ExpiresAt: created.Add(24 * time.Hour),
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithSessionAccountID overrides the owning account of the session.
func WithSessionAccountID(accountID string) SessionOption {
	return func(f *SessionFixture) {
		f.AccountID = accountID
	}
}

// WithSessionToken overrides the generated token.
func WithSessionToken(token string) SessionOption {
	return func(f *SessionFixture) {
		f.Token = token
	}
}

// WithSessionExpiresAt overrides the expiry instant.
func WithSessionExpiresAt(t time.Time) SessionOption {
	return func(f *SessionFixture) {
		f.ExpiresAt = t
	}
}

// WithSessionRevokedAt marks the session revoked at the given instant.
func WithSessionRevokedAt(t time.Time) SessionOption {
	return func(f *SessionFixture) {
		f.RevokedAt = &t
	}
}

// Persistence returns the fixture as a persistence.Session value.
func (f SessionFixture) Persistence() persistence.Session {
	return persistence.Session{
		ID:          f.ID,
		AccountID:   f.AccountID,
		Token:       f.Token,
		Fingerprint: f.Fingerprint,
		ExpiresAt:   f.ExpiresAt,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
		RevokedAt:   f.RevokedAt,
	}
}

// ------------------------------ User fixtures -----------------------------

// UserFixture represents a deterministic dataset user record.
type UserFixture struct {
	ID             string
	Name           string
	LDAP           string
	Role           mentorship.Role
	Terminated     bool
	Metrics        mentorship.ActivityMetrics
	Participations []mentorship.Participation
}

// UserOption configures the generated user fixture.
type UserOption func(*UserFixture)

// NewUserFixture returns a deterministic user fixture with optional overrides.
func NewUserFixture(opts ...UserOption) UserFixture {
	idx := atomic.AddUint64(&userCounter, 1)
	fixture := UserFixture{
		ID:   fmt.Sprintf("user-%03d", idx),
		Name: fmt.Sprintf("User %03d", idx),
		LDAP: fmt.Sprintf("user_%03d", idx),
		Role: mentorship.RoleEmployee,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithUserID overrides the generated user ID.
func WithUserID(id string) UserOption {
	return func(f *UserFixture) {
		f.ID = id
	}
}

// WithUserName overrides the generated display name and keeps the LDAP in step.
func WithUserName(name string) UserOption {
	return func(f *UserFixture) {
		f.Name = name
	}
}

// WithUserRole overrides the organizational role.
func WithUserRole(role mentorship.Role) UserOption {
	return func(f *UserFixture) {
		f.Role = role
	}
}

// WithUserTerminated marks the user terminated.
func WithUserTerminated() UserOption {
	return func(f *UserFixture) {
		f.Terminated = true
	}
}

// WithUserMetrics overrides the activity counters.
func WithUserMetrics(metrics mentorship.ActivityMetrics) UserOption {
	return func(f *UserFixture) {
		f.Metrics = metrics
	}
}

// WithParticipation appends one round enrollment to the fixture.
func WithParticipation(p mentorship.Participation) UserOption {
	return func(f *UserFixture) {
		f.Participations = append(f.Participations, p)
	}
}

// Domain returns the fixture as a mentorship.User value.
func (f UserFixture) Domain() mentorship.User {
	return mentorship.User{
		ID:             f.ID,
		Name:           f.Name,
		LDAP:           f.LDAP,
		Role:           f.Role,
		Terminated:     f.Terminated,
		Metrics:        f.Metrics,
		Participations: append([]mentorship.Participation(nil), f.Participations...),
	}
}

// Participation builds a minimal enrollment suitable for fixture composition.
func Participation(roundID string, role mentorship.MentorshipRole, status mentorship.ParticipationStatus, partners ...string) mentorship.Participation {
	return mentorship.Participation{
		ProgramName:  "Mentorship Program",
		RoundID:      roundID,
		Role:         role,
		StartDate:    "2026-03-01",
		EndDate:      "2026-06-15",
		Status:       status,
		PartnerNames: partners,
	}
}

// ----------------------------- Round fixtures -----------------------------

// RoundFixture represents a deterministic program round.
type RoundFixture struct {
	ID               string
	Name             string
	StartDate        string
	EndDate          string
	Status           mentorship.RoundStatus
	RequiredMeetings int
	Phases           mentorship.RoundPhases
}

// RoundOption configures the generated round fixture.
type RoundOption func(*RoundFixture)

// NewRoundFixture returns a deterministic round fixture with optional overrides.
func NewRoundFixture(opts ...RoundOption) RoundFixture {
	idx := atomic.AddUint64(&roundCounter, 1)
	fixture := RoundFixture{
		ID:               fmt.Sprintf("round-%03d", idx),
		Name:             fmt.Sprintf("Round %03d", idx),
		StartDate:        "2026-03-01",
		EndDate:          "2026-06-15",
		Status:           mentorship.RoundActive,
		RequiredMeetings: 8,
		Phases: mentorship.RoundPhases{
			Registration: "2026-03-15",
			Matching:     "2026-03-30",
			InProgress:   "2026-05-30",
			Summary:      "2026-06-07",
			Completed:    "2026-06-15",
		},
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithRoundID overrides the generated round ID.
func WithRoundID(id string) RoundOption {
	return func(f *RoundFixture) {
		f.ID = id
	}
}

// WithRoundStatus overrides the round status.
func WithRoundStatus(status mentorship.RoundStatus) RoundOption {
	return func(f *RoundFixture) {
		f.Status = status
	}
}

// WithRoundDates overrides the start and end dates.
func WithRoundDates(start, end string) RoundOption {
	return func(f *RoundFixture) {
		f.StartDate = start
		f.EndDate = end
	}
}

// WithRoundPhases overrides the phase deadlines.
func WithRoundPhases(phases mentorship.RoundPhases) RoundOption {
	return func(f *RoundFixture) {
		f.Phases = phases
	}
}

// WithRequiredMeetings overrides the per-round meeting requirement.
func WithRequiredMeetings(n int) RoundOption {
	return func(f *RoundFixture) {
		f.RequiredMeetings = n
	}
}

// Domain returns the fixture as a mentorship.Round value.
func (f RoundFixture) Domain() mentorship.Round {
	return mentorship.Round{
		ID:               f.ID,
		Name:             f.Name,
		StartDate:        f.StartDate,
		EndDate:          f.EndDate,
		Status:           f.Status,
		RequiredMeetings: f.RequiredMeetings,
		Phases:           f.Phases,
	}
}
