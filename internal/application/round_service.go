package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

// RoundRepository captures the persistence operations needed by the service.
type RoundRepository interface {
	CreateRound(ctx context.Context, round mentorship.Round) error
	UpdateRound(ctx context.Context, round mentorship.Round) error
	GetRound(ctx context.Context, id string) (mentorship.Round, error)
	ListRounds(ctx context.Context) ([]mentorship.Round, error)
	DeleteRound(ctx context.Context, id string) error
}

// RoundService orchestrates validation, authorization, and persistence for
// the round catalog.
type RoundService struct {
	rounds      RoundRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewRoundService constructs a round service with the provided dependencies.
func NewRoundService(rounds RoundRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *RoundService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &RoundService{rounds: rounds, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

func (s *RoundService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "RoundService", operation, attrs...)
}

// ListRounds returns the catalog for any authenticated principal.
func (s *RoundService) ListRounds(ctx context.Context, principal Principal) ([]mentorship.Round, error) {
	if s == nil || s.rounds == nil {
		return nil, fmt.Errorf("round repository not configured")
	}

	rounds, err := s.rounds.ListRounds(ctx)
	if err != nil {
		s.loggerWith(ctx, "ListRounds").ErrorContext(ctx, "failed to list rounds", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}
	return rounds, nil
}

// GetRound returns one catalog entry for any authenticated principal.
func (s *RoundService) GetRound(ctx context.Context, principal Principal, id string) (mentorship.Round, error) {
	if s == nil || s.rounds == nil {
		return mentorship.Round{}, fmt.Errorf("round repository not configured")
	}

	round, err := s.rounds.GetRound(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return mentorship.Round{}, ErrNotFound
		}
		return mentorship.Round{}, err
	}
	return round, nil
}

// CreateRound validates input and persists a new round for administrators.
func (s *RoundService) CreateRound(ctx context.Context, params CreateRoundParams) (round mentorship.Round, err error) {
	if s == nil {
		err = fmt.Errorf("RoundService is nil")
		return
	}

	logger := s.loggerWith(ctx, "CreateRound", "principal_id", params.Principal.AccountID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create round", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("round_id", round.ID).InfoContext(ctx, "round created")
	}()

	if !params.Principal.IsAdmin {
		err = ErrUnauthorized
		return
	}

	vErr := validateRoundInput(params.Input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	round = roundFromInput(params.Input)
	if round.ID == "" {
		round.ID = s.idGenerator()
	}

	if s.rounds == nil {
		return
	}
	if err = s.rounds.CreateRound(ctx, round); err != nil {
		if errors.Is(err, persistence.ErrAlreadyExists) {
			err = ErrAlreadyExists
		}
		round = mentorship.Round{}
		return
	}
	return
}

// UpdateRound validates input and rewrites an existing round for administrators.
func (s *RoundService) UpdateRound(ctx context.Context, params UpdateRoundParams) (round mentorship.Round, err error) {
	if s == nil {
		err = fmt.Errorf("RoundService is nil")
		return
	}
	if s.rounds == nil {
		err = fmt.Errorf("round repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "UpdateRound",
		"principal_id", params.Principal.AccountID,
		"round_id", params.RoundID,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update round", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "round updated")
	}()

	if !params.Principal.IsAdmin {
		err = ErrUnauthorized
		return
	}

	vErr := validateRoundInput(params.Input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	round = roundFromInput(params.Input)
	round.ID = params.RoundID

	if err = s.rounds.UpdateRound(ctx, round); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		round = mentorship.Round{}
		return
	}
	return
}

// DeleteRound removes a round from the catalog for administrators.
func (s *RoundService) DeleteRound(ctx context.Context, principal Principal, id string) error {
	if s == nil {
		return fmt.Errorf("RoundService is nil")
	}
	if s.rounds == nil {
		return fmt.Errorf("round repository not configured")
	}

	logger := s.loggerWith(ctx, "DeleteRound",
		"principal_id", principal.AccountID,
		"round_id", id,
	)

	if !principal.IsAdmin {
		logger.ErrorContext(ctx, "failed to delete round", "error", ErrUnauthorized, "error_kind", ErrorKind(ErrUnauthorized))
		return ErrUnauthorized
	}

	if err := s.rounds.DeleteRound(ctx, id); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to delete round", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "round deleted")
	return nil
}

func roundFromInput(input RoundInput) mentorship.Round {
	return mentorship.Round{
		ID:               input.ID,
		Name:             input.Name,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Status:           input.Status,
		RequiredMeetings: input.RequiredMeetings,
		Phases:           input.Phases,
	}
}

func validateRoundInput(input RoundInput) *ValidationError {
	vErr := &ValidationError{}

	if input.Name == "" {
		vErr.add("name", "name is required")
	}

	start, startOK := parseISODate(input.StartDate)
	if !startOK {
		vErr.add("startDate", "please select start and end date")
	}
	end, endOK := parseISODate(input.EndDate)
	if !endOK {
		vErr.add("endDate", "please select start and end date")
	} else if startOK && !end.After(start) {
		vErr.add("endDate", "end date must be after start date")
	}

	switch input.Status {
	case mentorship.RoundActive, mentorship.RoundCompleted:
	default:
		vErr.add("status", "unknown round status")
	}

	if input.RequiredMeetings < 1 {
		vErr.add("requiredMeetings", "required meetings must be at least 1")
	}

	validatePhases(input.Phases, vErr)
	return vErr
}

// validatePhases requires all five deadlines and a strictly increasing
// ordering between them.
func validatePhases(phases mentorship.RoundPhases, vErr *ValidationError) {
	fields := []struct {
		name  string
		value string
	}{
		{"phases.registration", phases.Registration},
		{"phases.matching", phases.Matching},
		{"phases.inProgress", phases.InProgress},
		{"phases.summary", phases.Summary},
		{"phases.completed", phases.Completed},
	}

	parsed := make([]time.Time, 0, len(fields))
	valid := true
	for _, f := range fields {
		date, ok := parseISODate(f.value)
		if !ok {
			vErr.add(f.name, "phase deadline is required")
			valid = false
			continue
		}
		parsed = append(parsed, date)
	}
	if !valid {
		return
	}

	for i := 1; i < len(parsed); i++ {
		if !parsed[i].After(parsed[i-1]) {
			vErr.add(fields[i].name, "phase deadlines must be strictly increasing")
		}
	}
}

func parseISODate(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
