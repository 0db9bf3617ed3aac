package testfixtures

import (
	"log/slog"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/application"
)

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks.
type ServiceFactory struct {
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("id"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(time.Time{})
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("id")
	}
	return factory
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.Clock = clock
	}
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.IDGenerator = generator
	}
}

// AuthServiceDeps captures dependencies for constructing an auth service.
type AuthServiceDeps struct {
	Accounts       application.AccountStore
	Sessions       application.SessionStore
	PasswordVerify application.PasswordVerifier
	TokenGenerator func() string
	Now            func() time.Time
	SessionTTL     time.Duration
	Logger         *slog.Logger
}

// NewAuthService builds an auth service using the supplied dependencies
// combined with the factory defaults.
func (f *ServiceFactory) NewAuthService(deps AuthServiceDeps) *application.AuthService {
	token := deps.TokenGenerator
	if token == nil {
		token = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewAuthService(
		deps.Accounts,
		deps.Sessions,
		deps.PasswordVerify,
		token,
		now,
		deps.SessionTTL,
		deps.Logger,
	)
}

// RoundServiceDeps captures dependencies for constructing a round service.
type RoundServiceDeps struct {
	Rounds      application.RoundRepository
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewRoundService builds a round service using the supplied dependencies.
func (f *ServiceFactory) NewRoundService(deps RoundServiceDeps) *application.RoundService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewRoundService(
		deps.Rounds,
		idGen,
		now,
		deps.Logger,
	)
}

// ParticipationServiceDeps captures dependencies for constructing a
// participation service.
type ParticipationServiceDeps struct {
	Users       application.UserStore
	Rounds      application.RoundRepository
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewParticipationService builds a participation service using the supplied
// dependencies.
func (f *ServiceFactory) NewParticipationService(deps ParticipationServiceDeps) *application.ParticipationService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewParticipationService(
		deps.Users,
		deps.Rounds,
		idGen,
		now,
		deps.Logger,
	)
}

// ReportingServiceDeps captures dependencies for constructing a reporting service.
type ReportingServiceDeps struct {
	Users  application.UserDirectory
	Logger *slog.Logger
}

// NewReportingService builds a reporting service using the supplied dependencies.
func (f *ServiceFactory) NewReportingService(deps ReportingServiceDeps) *application.ReportingService {
	return application.NewReportingService(deps.Users, deps.Logger)
}

// ProfileServiceDeps captures dependencies for constructing a profile service.
type ProfileServiceDeps struct {
	Users       application.UserStore
	IDGenerator func() string
	Logger      *slog.Logger
}

// NewProfileService builds a profile service using the supplied dependencies.
func (f *ServiceFactory) NewProfileService(deps ProfileServiceDeps) *application.ProfileService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	return application.NewProfileService(
		deps.Users,
		idGen,
		deps.Logger,
	)
}
