// Package models defines the shared value types for rotabot: the roster,
// per-day duty assignments, selection history, and configuration.
package models

import "time"

// Person is an opaque identifier for a team member, either a plain name or
// a Slack mention token. Matching against configuration is case-insensitive.
type Person string

// Roster is the ordered list of people in the rotation.
type Roster []Person

// OnboardingAssignment records the extra onboarding-support duty for a run.
// It is independent of Operations tasks; the same person may hold both.
type OnboardingAssignment struct {
	Person Person `yaml:"person" json:"person"`
	Type   string `yaml:"type" json:"type"`
}

// Assignment is the complete outcome of one scheduled run. Only the Service
// Desk pair (and the normalized Operations task names) are persisted; the
// rest is transient.
type Assignment struct {
	Date    time.Time
	Weekday string

	// ServiceDesk holds exactly two distinct people.
	ServiceDesk []Person

	// Remaining preserves roster order for the people assigned Operations
	// tasks; Operations maps each of them to their task labels for the day.
	Remaining  Roster
	Operations map[Person][]string

	// Onboarding is nil on weekdays without a scheduled onboarding type.
	Onboarding *OnboardingAssignment

	// StreakRelaxed is true when the no-3-in-a-row block had to be waived
	// to keep at least two Service Desk candidates.
	StreakRelaxed bool
}
