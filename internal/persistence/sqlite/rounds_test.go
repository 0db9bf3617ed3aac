package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

func openStore(tb testing.TB) *RoundStore {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "rounds.db")
	store, err := Open(path)
	if err != nil {
		tb.Fatalf("failed to open store: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		tb.Fatalf("failed to migrate store: %v", err)
	}
	tb.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRound(id, start string) mentorship.Round {
	return mentorship.Round{
		ID:               id,
		Name:             "Round " + id,
		StartDate:        start,
		EndDate:          "2099-12-31",
		Status:           mentorship.RoundActive,
		RequiredMeetings: 8,
		Phases: mentorship.RoundPhases{
			Registration: "2024-08-15",
			Matching:     "2024-08-25",
			InProgress:   "2024-12-15",
			Summary:      "2024-12-25",
			Completed:    "2024-12-31",
		},
	}
}

func TestRoundStoreCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	t.Run("round-trips a full round", func(t *testing.T) {
		want := sampleRound("r1", "2024-09-01")
		if err := store.CreateRound(ctx, want); err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}

		got, err := store.GetRound(ctx, "r1")
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if got != want {
			t.Fatalf("round mismatch: got %+v, want %+v", got, want)
		}
	})

	t.Run("duplicate ids map to ErrAlreadyExists", func(t *testing.T) {
		err := store.CreateRound(ctx, sampleRound("r1", "2024-09-01"))
		if !errors.Is(err, persistence.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("updates persist and missing rounds map to ErrNotFound", func(t *testing.T) {
		round := sampleRound("r1", "2024-09-01")
		round.Name = "Renamed"
		round.Status = mentorship.RoundCompleted
		if err := store.UpdateRound(ctx, round); err != nil {
			t.Fatalf("UpdateRound failed: %v", err)
		}

		got, err := store.GetRound(ctx, "r1")
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if got.Name != "Renamed" || got.Status != mentorship.RoundCompleted {
			t.Fatalf("update not persisted: %+v", got)
		}

		missing := sampleRound("ghost", "2024-09-01")
		if err := store.UpdateRound(ctx, missing); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("lists newest first with id tiebreak", func(t *testing.T) {
		for _, r := range []mentorship.Round{
			sampleRound("r2", "2023-09-01"),
			sampleRound("r4", "2024-03-01"),
			sampleRound("r3", "2024-03-01"),
		} {
			if err := store.CreateRound(ctx, r); err != nil {
				t.Fatalf("CreateRound failed: %v", err)
			}
		}

		rounds, err := store.ListRounds(ctx)
		if err != nil {
			t.Fatalf("ListRounds failed: %v", err)
		}
		var ids []string
		for _, r := range rounds {
			ids = append(ids, r.ID)
		}
		want := []string{"r1", "r3", "r4", "r2"}
		if len(ids) != len(want) {
			t.Fatalf("got %v, want %v", ids, want)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("got %v, want %v", ids, want)
			}
		}
	})

	t.Run("deletes and reports missing rounds", func(t *testing.T) {
		if err := store.DeleteRound(ctx, "r2"); err != nil {
			t.Fatalf("DeleteRound failed: %v", err)
		}
		if _, err := store.GetRound(ctx, "r2"); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteRound(ctx, "r2"); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
		}
	})
}
