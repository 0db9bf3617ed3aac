// Package sqlite persists the mentorship round catalog in SQLite. Rounds
// outlive the regenerated demo dataset, so they get a durable store while
// everything else stays in memory.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

const schema = `
CREATE TABLE IF NOT EXISTS mentorship_rounds (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	start_date        TEXT NOT NULL,
	end_date          TEXT NOT NULL,
	status            TEXT NOT NULL,
	required_meetings INTEGER NOT NULL,
	phase_registration TEXT NOT NULL,
	phase_matching     TEXT NOT NULL,
	phase_in_progress  TEXT NOT NULL,
	phase_summary      TEXT NOT NULL,
	phase_completed    TEXT NOT NULL,
	created_at        TEXT NOT NULL,
	updated_at        TEXT NOT NULL
);
`

// RoundStore implements persistence.RoundRepository on SQLite.
type RoundStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects to the SQLite database at dsn. The connection count is
// pinned to one because modernc's driver serializes writers anyway.
func Open(dsn string) (*RoundStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	return &RoundStore{db: db, now: time.Now}, nil
}

// Close releases the underlying connection.
func (s *RoundStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the round table when missing.
func (s *RoundStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: migrate rounds: %w", err)
	}
	return nil
}

// CreateRound inserts a catalog entry.
func (s *RoundStore) CreateRound(ctx context.Context, round mentorship.Round) error {
	if round.ID == "" {
		return fmt.Errorf("sqlite: round id is required")
	}

	now := s.now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO mentorship_rounds (
			id, name, start_date, end_date, status, required_meetings,
			phase_registration, phase_matching, phase_in_progress,
			phase_summary, phase_completed, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		round.ID, round.Name, round.StartDate, round.EndDate,
		string(round.Status), round.RequiredMeetings,
		round.Phases.Registration, round.Phases.Matching, round.Phases.InProgress,
		round.Phases.Summary, round.Phases.Completed,
		now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return persistence.ErrAlreadyExists
		}
		return fmt.Errorf("sqlite: create round: %w", err)
	}
	return nil
}

// UpdateRound rewrites an existing catalog entry.
func (s *RoundStore) UpdateRound(ctx context.Context, round mentorship.Round) error {
	if round.ID == "" {
		return persistence.ErrNotFound
	}

	query := `
		UPDATE mentorship_rounds
		SET name = ?, start_date = ?, end_date = ?, status = ?,
			required_meetings = ?, phase_registration = ?, phase_matching = ?,
			phase_in_progress = ?, phase_summary = ?, phase_completed = ?,
			updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		round.Name, round.StartDate, round.EndDate, string(round.Status),
		round.RequiredMeetings,
		round.Phases.Registration, round.Phases.Matching, round.Phases.InProgress,
		round.Phases.Summary, round.Phases.Completed,
		s.now().UTC().Format(time.RFC3339),
		round.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: update round: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

// GetRound retrieves one catalog entry by ID.
func (s *RoundStore) GetRound(ctx context.Context, id string) (mentorship.Round, error) {
	if id == "" {
		return mentorship.Round{}, persistence.ErrNotFound
	}

	query := selectColumns + ` WHERE id = ?`
	round, err := scanRound(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return mentorship.Round{}, persistence.ErrNotFound
	}
	if err != nil {
		return mentorship.Round{}, fmt.Errorf("sqlite: get round: %w", err)
	}
	return round, nil
}

// ListRounds returns the catalog newest first, with the ID as tiebreaker.
func (s *RoundStore) ListRounds(ctx context.Context) ([]mentorship.Round, error) {
	query := selectColumns + ` ORDER BY start_date DESC, id ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list rounds: %w", err)
	}
	defer rows.Close()

	var rounds []mentorship.Round
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan round: %w", err)
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list rounds: %w", err)
	}
	return rounds, nil
}

// DeleteRound removes one catalog entry.
func (s *RoundStore) DeleteRound(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM mentorship_rounds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete round: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

const selectColumns = `
	SELECT id, name, start_date, end_date, status, required_meetings,
		phase_registration, phase_matching, phase_in_progress,
		phase_summary, phase_completed
	FROM mentorship_rounds
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (mentorship.Round, error) {
	var round mentorship.Round
	var status string
	err := row.Scan(
		&round.ID, &round.Name, &round.StartDate, &round.EndDate,
		&status, &round.RequiredMeetings,
		&round.Phases.Registration, &round.Phases.Matching, &round.Phases.InProgress,
		&round.Phases.Summary, &round.Phases.Completed,
	)
	if err != nil {
		return mentorship.Round{}, err
	}
	round.Status = mentorship.RoundStatus(status)
	return round, nil
}

// isUniqueViolation recognizes primary-key conflicts without tying the
// caller to driver-specific error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint violation")
}
