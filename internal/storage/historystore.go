// Package storage provides the file-backed selection history store.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/baysideops/rotabot/pkg/models"
	"gopkg.in/yaml.v3"
)

// HistoryStore manages the persisted record of past Service Desk
// selections. The store is append-only by date: past entries are never
// rewritten, and a new entry is added only after a run completes.
type HistoryStore interface {
	Load() error
	PairOn(date string) []models.Person
	LastOps() map[models.Person][]string
	Append(date string, pair []models.Person, ops map[models.Person][]string) error
	RecentEntries(limit int) []models.DatedSelection
	Save() error
}

type fileHistoryStore struct {
	path    string
	history models.SelectionHistory
}

// NewHistoryStore creates a HistoryStore backed by a YAML file at path.
func NewHistoryStore(path string) HistoryStore {
	return &fileHistoryStore{
		path: path,
		history: models.SelectionHistory{
			Version:    "1.0",
			Selections: make(map[string][]models.Person),
		},
	}
}

// Load reads the history file. A missing file loads as an empty history.
func (s *fileHistoryStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("loading selection history: %w", err)
	}

	var history models.SelectionHistory
	if err := yaml.Unmarshal(data, &history); err != nil {
		return fmt.Errorf("parsing selection history: %w", err)
	}

	if history.Version == "" {
		history.Version = "1.0"
	}
	if history.Selections == nil {
		history.Selections = make(map[string][]models.Person)
	}
	s.history = history
	return nil
}

// PairOn returns the Service Desk pair recorded for the given ISO date, or
// nil when no run was recorded that day.
func (s *fileHistoryStore) PairOn(date string) []models.Person {
	pair := s.history.Selections[date]
	if pair == nil {
		return nil
	}
	out := make([]models.Person, len(pair))
	copy(out, pair)
	return out
}

// LastOps returns the normalized Operations task names from the most recent
// run, keyed by person.
func (s *fileHistoryStore) LastOps() map[models.Person][]string {
	return s.history.LastOps
}

// Append records today's result in memory: the Service Desk pair for the
// date, and the normalized task names replacing the previous run's LastOps.
// Appending over an existing date is rejected; past dates are immutable.
func (s *fileHistoryStore) Append(date string, pair []models.Person, ops map[models.Person][]string) error {
	if _, err := time.Parse(models.HistoryDateLayout, date); err != nil {
		return fmt.Errorf("appending selection: bad date %q: %w", date, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("appending selection: expected a pair, got %d people", len(pair))
	}
	if _, exists := s.history.Selections[date]; exists {
		return fmt.Errorf("appending selection: %s already recorded", date)
	}

	s.history.Selections[date] = append([]models.Person(nil), pair...)

	lastOps := make(map[models.Person][]string, len(ops))
	for person, tasks := range ops {
		names := make([]string, 0, len(tasks))
		for _, task := range tasks {
			names = append(names, strings.ToLower(models.TaskDisplayName(task)))
		}
		lastOps[person] = names
	}
	s.history.LastOps = lastOps

	return nil
}

// RecentEntries returns up to limit entries, newest first. A limit of 0
// returns all entries.
func (s *fileHistoryStore) RecentEntries(limit int) []models.DatedSelection {
	entries := make([]models.DatedSelection, 0, len(s.history.Selections))
	for date, pair := range s.history.Selections {
		entries = append(entries, models.DatedSelection{Date: date, Pair: pair})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

// Save rewrites the history file with the in-memory state.
func (s *fileHistoryStore) Save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("saving selection history: creating directory: %w", err)
		}
	}

	data, err := yaml.Marshal(&s.history)
	if err != nil {
		return fmt.Errorf("saving selection history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("saving selection history: %w", err)
	}
	return nil
}
