package observability

import (
	"path/filepath"
	"testing"
	"time"
)

func TestJSONLEventLog_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	defer log.Close()

	events := []Event{
		{Time: time.Now().UTC(), Level: "INFO", Type: "selection.made", Message: "pair selected"},
		{Time: time.Now().UTC(), Level: "WARN", Type: "streak.relaxed", Message: "block waived"},
		{Time: time.Now().UTC(), Level: "INFO", Type: "history.saved", Message: "history updated"},
	}
	for _, event := range events {
		if err := log.Write(event); err != nil {
			t.Fatalf("writing event: %v", err)
		}
	}

	all, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	relaxed, err := log.Read(EventFilter{Type: "streak.relaxed"})
	if err != nil {
		t.Fatalf("reading filtered events: %v", err)
	}
	if len(relaxed) != 1 || relaxed[0].Level != "WARN" {
		t.Fatalf("unexpected filtered events %v", relaxed)
	}
}

func TestJSONLEventLog_SinceFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	defer log.Close()

	old := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	recent := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
	_ = log.Write(Event{Time: old, Level: "INFO", Type: "run.skipped"})
	_ = log.Write(Event{Time: recent, Level: "INFO", Type: "run.skipped"})

	cutoff := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	got, err := log.Read(EventFilter{Since: &cutoff})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(got) != 1 || !got[0].Time.Equal(recent) {
		t.Fatalf("expected only the recent event, got %v", got)
	}
}

func TestJSONLEventLog_MissingFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	log.Close()

	fresh := &jsonlEventLog{path: filepath.Join(t.TempDir(), "other.jsonl")}
	got, err := fresh.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading missing file: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil events, got %v", got)
	}
}
