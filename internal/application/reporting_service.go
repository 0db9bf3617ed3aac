package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

// UserDirectory captures the dataset listing needed by reporting.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]mentorship.User, error)
}

// ReportingService serves the admin dashboard aggregates and the user table.
type ReportingService struct {
	users  UserDirectory
	logger *slog.Logger
}

// NewReportingService constructs a reporting service.
func NewReportingService(users UserDirectory, logger *slog.Logger) *ReportingService {
	return &ReportingService{users: users, logger: defaultLogger(logger)}
}

func (s *ReportingService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ReportingService", operation, attrs...)
}

func (s *ReportingService) listForAdmin(ctx context.Context, principal Principal) ([]mentorship.User, error) {
	if s == nil || s.users == nil {
		return nil, fmt.Errorf("user directory not configured")
	}
	if !principal.IsAdmin {
		return nil, ErrUnauthorized
	}
	return s.users.ListUsers(ctx)
}

// Overview folds the dataset into the round-filtered aggregates shown on the
// admin dashboard. The round may be a catalog ID or mentorship.RoundAll.
func (s *ReportingService) Overview(ctx context.Context, principal Principal, round string) (OverviewReport, error) {
	logger := s.loggerWith(ctx, "Overview",
		"principal_id", principal.AccountID,
		"round", round,
	)

	users, err := s.listForAdmin(ctx, principal)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build overview", "error", err, "error_kind", ErrorKind(err))
		return OverviewReport{}, err
	}

	return OverviewReport{
		Summary:    mentorship.Summarize(users, round),
		Categories: mentorship.Categorize(mentorship.Participants(users, round)),
		Activity:   mentorship.ActivityTotals(users),
	}, nil
}

// Participants lists the unique participants of a round for administrators.
func (s *ReportingService) Participants(ctx context.Context, principal Principal, round string) ([]mentorship.ParticipantInfo, error) {
	logger := s.loggerWith(ctx, "Participants",
		"principal_id", principal.AccountID,
		"round", round,
	)

	users, err := s.listForAdmin(ctx, principal)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list participants", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}
	return mentorship.Participants(users, round), nil
}

// UserTable filters and sorts the dataset for the admin user table.
func (s *ReportingService) UserTable(ctx context.Context, principal Principal, query mentorship.TableQuery) ([]mentorship.User, error) {
	logger := s.loggerWith(ctx, "UserTable", "principal_id", principal.AccountID)

	if query.SortField == "" {
		query.SortField = mentorship.SortByLDAP
	}
	if !query.SortField.Valid() {
		vErr := &ValidationError{}
		vErr.add("sortField", "unknown sort field")
		logger.ErrorContext(ctx, "failed to build user table", "error", vErr, "error_kind", ErrorKind(vErr))
		return nil, vErr
	}
	if query.SortDirection == "" {
		query.SortDirection = mentorship.Ascending
	}

	users, err := s.listForAdmin(ctx, principal)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build user table", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}
	return mentorship.SelectUsers(users, query), nil
}
