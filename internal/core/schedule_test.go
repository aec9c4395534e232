package core

import (
	"testing"
	"time"

	"github.com/baysideops/rotabot/pkg/models"
)

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestPreviousWeekday_SkipsWeekend(t *testing.T) {
	// 2026-08-31 is a Monday; the prior scheduled day is Friday the 28th.
	monday := date(2026, time.August, 31, 9, 0)
	prev := PreviousWeekday(monday)
	if prev.Weekday() != time.Friday || prev.Day() != 28 {
		t.Fatalf("expected Friday Aug 28, got %s", prev.Format("Monday 2006-01-02"))
	}

	// And Friday looks back to Thursday.
	prevPrev := PreviousWeekday(prev)
	if prevPrev.Weekday() != time.Thursday || prevPrev.Day() != 27 {
		t.Fatalf("expected Thursday Aug 27, got %s", prevPrev.Format("Monday 2006-01-02"))
	}
}

func TestPreviousWeekday_Midweek(t *testing.T) {
	wednesday := date(2026, time.September, 2, 9, 0)
	prev := PreviousWeekday(wednesday)
	if prev.Weekday() != time.Tuesday || prev.Day() != 1 {
		t.Fatalf("expected Tuesday Sep 1, got %s", prev.Format("Monday 2006-01-02"))
	}
}

func TestShouldRun_WithinWindow(t *testing.T) {
	cfg := models.Config{RunHour: 9, RunWindowMinutes: 10}

	if !ShouldRun(date(2026, time.September, 2, 9, 5), cfg) {
		t.Fatal("expected run at 09:05 on a Wednesday")
	}
	if ShouldRun(date(2026, time.September, 2, 9, 10), cfg) {
		t.Fatal("expected skip at 09:10, window is [09:00, 09:10)")
	}
	if ShouldRun(date(2026, time.September, 2, 10, 0), cfg) {
		t.Fatal("expected skip outside the run hour")
	}
}

func TestShouldRun_WeekendSkipped(t *testing.T) {
	cfg := models.Config{RunHour: 9, RunWindowMinutes: 10}
	saturday := date(2026, time.September, 5, 9, 5)
	if ShouldRun(saturday, cfg) {
		t.Fatal("expected skip on Saturday")
	}
}

func TestShouldRun_ForceOverridesEverything(t *testing.T) {
	cfg := models.Config{RunHour: 9, RunWindowMinutes: 10, ForceRun: true}
	saturday := date(2026, time.September, 5, 22, 45)
	if !ShouldRun(saturday, cfg) {
		t.Fatal("expected force-run to override weekday and window guards")
	}
}

func TestDayName_SimulateOverride(t *testing.T) {
	wednesday := date(2026, time.September, 2, 9, 0)

	if got := DayName(wednesday, models.Config{}); got != "Wednesday" {
		t.Fatalf("expected Wednesday, got %s", got)
	}
	if got := DayName(wednesday, models.Config{SimulateDay: "Monday"}); got != "Monday" {
		t.Fatalf("expected simulated Monday, got %s", got)
	}
}
