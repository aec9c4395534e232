package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/baysideops/rotabot/pkg/models"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "selection_history.yaml")
}

func TestHistoryStore_MissingFileLoadsEmpty(t *testing.T) {
	store := NewHistoryStore(tempStorePath(t))
	if err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair := store.PairOn("2026-08-31"); pair != nil {
		t.Fatalf("expected no pair, got %v", pair)
	}
	if entries := store.RecentEntries(0); len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestHistoryStore_RoundTrip(t *testing.T) {
	path := tempStorePath(t)

	store := NewHistoryStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("loading empty store: %v", err)
	}

	pair := []models.Person{"Alex", "Blake"}
	ops := map[models.Person][]string{
		"Casey": {"<https://wiki.example.com/imaging|System Imaging>", "T2"},
	}
	if err := store.Append("2026-08-31", pair, ops); err != nil {
		t.Fatalf("appending: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("saving: %v", err)
	}

	reloaded := NewHistoryStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reloading: %v", err)
	}

	got := reloaded.PairOn("2026-08-31")
	if len(got) != 2 || got[0] != "Alex" || got[1] != "Blake" {
		t.Fatalf("expected [Alex Blake], got %v", got)
	}

	// LastOps carries the normalized display names.
	lastOps := reloaded.LastOps()
	tasks := lastOps["Casey"]
	if len(tasks) != 2 || tasks[0] != "system imaging" || tasks[1] != "t2" {
		t.Fatalf("expected normalized task names, got %v", tasks)
	}
}

func TestHistoryStore_ReloadIsIdempotent(t *testing.T) {
	path := tempStorePath(t)

	store := NewHistoryStore(path)
	if err := store.Append("2026-08-28", []models.Person{"Alex", "Blake"}, nil); err != nil {
		t.Fatalf("appending: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("saving: %v", err)
	}

	// Load, add one date, save, reload: the old entry is untouched and the
	// new one is present.
	second := NewHistoryStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("loading: %v", err)
	}
	if err := second.Append("2026-08-31", []models.Person{"Casey", "Drew"}, nil); err != nil {
		t.Fatalf("appending: %v", err)
	}
	if err := second.Save(); err != nil {
		t.Fatalf("saving: %v", err)
	}

	third := NewHistoryStore(path)
	if err := third.Load(); err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if pair := third.PairOn("2026-08-28"); len(pair) != 2 || pair[0] != "Alex" {
		t.Fatalf("old entry corrupted: %v", pair)
	}
	if pair := third.PairOn("2026-08-31"); len(pair) != 2 || pair[0] != "Casey" {
		t.Fatalf("new entry missing: %v", pair)
	}
}

func TestHistoryStore_AppendRejectsExistingDate(t *testing.T) {
	store := NewHistoryStore(tempStorePath(t))
	if err := store.Append("2026-08-31", []models.Person{"Alex", "Blake"}, nil); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := store.Append("2026-08-31", []models.Person{"Casey", "Drew"}, nil); err == nil {
		t.Fatal("expected error when rewriting an existing date")
	}
}

func TestHistoryStore_AppendValidation(t *testing.T) {
	store := NewHistoryStore(tempStorePath(t))

	if err := store.Append("31/08/2026", []models.Person{"Alex", "Blake"}, nil); err == nil {
		t.Fatal("expected error for a malformed date")
	}
	if err := store.Append("2026-08-31", []models.Person{"Alex"}, nil); err == nil {
		t.Fatal("expected error for a 1-person pair")
	}
}

func TestHistoryStore_RecentEntriesNewestFirst(t *testing.T) {
	store := NewHistoryStore(tempStorePath(t))
	dates := []string{"2026-08-27", "2026-08-31", "2026-08-28"}
	for _, date := range dates {
		if err := store.Append(date, []models.Person{"Alex", "Blake"}, nil); err != nil {
			t.Fatalf("appending %s: %v", date, err)
		}
	}

	entries := store.RecentEntries(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2026-08-31" || entries[1].Date != "2026-08-28" {
		t.Fatalf("expected newest first, got %v", entries)
	}
}

func TestHistoryStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.yaml")
	store := NewHistoryStore(path)
	if err := store.Append("2026-08-31", []models.Person{"Alex", "Blake"}, nil); err != nil {
		t.Fatalf("appending: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("saving: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected history file to exist: %v", err)
	}
}
