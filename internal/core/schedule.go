package core

import (
	"strings"
	"time"

	"github.com/baysideops/rotabot/pkg/models"
)

// DayName returns the weekday name for now, honoring the simulate-day
// override when set.
func DayName(now time.Time, cfg models.Config) string {
	if day := strings.TrimSpace(cfg.SimulateDay); day != "" {
		return day
	}
	return now.Weekday().String()
}

// IsWeekday reports whether d falls Monday through Friday.
func IsWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ShouldRun reports whether a run should proceed at the given local time:
// always when force-run is set, otherwise only on a weekday inside the
// configured window. A skip is not an error; the caller exits cleanly with
// no side effects.
func ShouldRun(now time.Time, cfg models.Config) bool {
	if cfg.ForceRun {
		return true
	}
	if !IsWeekday(now) {
		return false
	}
	return now.Hour() == cfg.RunHour && now.Minute() < cfg.RunWindowMinutes
}

// PreviousWeekday returns the scheduled run date before d. Saturdays and
// Sundays are skipped, so Monday looks back to Friday: a weekend never
// breaks a Service Desk streak.
func PreviousWeekday(d time.Time) time.Time {
	prev := d.AddDate(0, 0, -1)
	for !IsWeekday(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}
