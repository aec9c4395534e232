package models

import "strings"

// Config holds the full runtime configuration for one invocation. It is
// constructed once at startup (file + environment) and passed down;
// algorithmic components never read the process environment themselves.
type Config struct {
	Roster     Roster   `yaml:"roster" mapstructure:"roster"`
	Operations []string `yaml:"operations" mapstructure:"operations"`

	// Exclusions maps a lowercase weekday name to the people unavailable
	// for any duty that day. Name matching is case-insensitive.
	Exclusions map[string][]string `yaml:"exclusions,omitempty" mapstructure:"exclusions"`

	// ReducedOpsDays lists weekdays on which each remaining person gets
	// ReducedTasksPerPerson tasks instead of TasksPerPerson.
	ReducedOpsDays        []string `yaml:"reduced_ops_days,omitempty" mapstructure:"reduced_ops_days"`
	TasksPerPerson        int      `yaml:"tasks_per_person" mapstructure:"tasks_per_person"`
	ReducedTasksPerPerson int      `yaml:"reduced_tasks_per_person" mapstructure:"reduced_tasks_per_person"`

	// OnboardingSchedule maps a lowercase weekday name to the onboarding
	// type supported that day (e.g. "FTE", "Contractor").
	OnboardingSchedule map[string]string `yaml:"onboarding_schedule,omitempty" mapstructure:"onboarding_schedule"`

	WebhookURL  string `yaml:"webhook_url,omitempty" mapstructure:"webhook_url"`
	HistoryPath string `yaml:"history_path" mapstructure:"history_path"`
	Timezone    string `yaml:"timezone" mapstructure:"timezone"`

	// RunHour and RunWindowMinutes define the daily window (local time)
	// inside which an un-forced run proceeds.
	RunHour          int `yaml:"run_hour" mapstructure:"run_hour"`
	RunWindowMinutes int `yaml:"run_window_minutes" mapstructure:"run_window_minutes"`

	ForceRun    bool   `yaml:"force_run,omitempty" mapstructure:"force_run"`
	SimulateDay string `yaml:"simulate_day,omitempty" mapstructure:"simulate_day"`
}

// DayPolicy is the per-weekday view of the configuration consumed by the
// planner: who is excluded, how many tasks each remaining person gets, and
// whether an onboarding assignment is scheduled.
type DayPolicy struct {
	Weekday string

	// Excluded holds casefolded names for membership tests.
	Excluded map[string]bool

	TasksPerPerson int

	// OnboardingType is empty when no onboarding is scheduled.
	OnboardingType string
}

// PolicyFor builds the DayPolicy for the given weekday name.
func (c Config) PolicyFor(weekday string) DayPolicy {
	day := strings.ToLower(weekday)

	excluded := make(map[string]bool)
	for _, name := range c.Exclusions[day] {
		excluded[strings.ToLower(strings.TrimSpace(name))] = true
	}

	tasks := c.TasksPerPerson
	for _, reduced := range c.ReducedOpsDays {
		if strings.EqualFold(strings.TrimSpace(reduced), weekday) {
			tasks = c.ReducedTasksPerPerson
			break
		}
	}

	return DayPolicy{
		Weekday:        weekday,
		Excluded:       excluded,
		TasksPerPerson: tasks,
		OnboardingType: c.OnboardingSchedule[day],
	}
}
