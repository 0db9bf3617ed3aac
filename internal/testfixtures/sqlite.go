package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/circlecat/mentorship-dashboard/internal/persistence/sqlite"
)

// RoundStoreHarness provides round catalog access backed by a temporary
// SQLite database for integration-style persistence tests.
type RoundStoreHarness struct {
	Rounds *sqlite.RoundStore

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *RoundStoreHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewRoundStoreHarness constructs a RoundStoreHarness using a temporary file
// that is migrated automatically. Callers may optionally invoke Close, but the
// helper also registers a cleanup callback with the provided testing.TB.
func NewRoundStoreHarness(tb testing.TB) *RoundStoreHarness {
	tb.Helper()

	dir := tb.TempDir()
	path := filepath.Join(dir, "dashboard.db")

	store, err := sqlite.Open(path)
	if err != nil {
		tb.Fatalf("failed to open round store: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		tb.Fatalf("failed to migrate round store: %v", err)
	}

	harness := &RoundStoreHarness{
		Rounds: store,
		cleanup: func() {
			_ = store.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}
