// Package core contains the rotation logic for rotabot: configuration
// loading, the schedule guard, eligibility filtering, Service Desk
// selection, Operations task distribution, and onboarding assignment.
package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/baysideops/rotabot/pkg/models"
	"github.com/spf13/viper"
)

// weekdayNames holds lowercase weekday names, used to validate schedule
// configuration and to scan per-day exclusion environment variables.
var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ConfigLoader builds the immutable run configuration from the optional
// .rotabot.yaml file and environment-variable overrides.
type ConfigLoader interface {
	Load() (models.Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper for the YAML file
// and an injectable environment lookup for overrides.
type viperConfigLoader struct {
	basePath  string
	lookupEnv func(string) (string, bool)
}

// NewConfigLoader creates a ConfigLoader reading .rotabot.yaml from
// basePath with overrides from the process environment.
func NewConfigLoader(basePath string) ConfigLoader {
	return NewConfigLoaderWithEnv(basePath, os.LookupEnv)
}

// NewConfigLoaderWithEnv creates a ConfigLoader with a custom environment
// lookup. Tests inject a fake lookup instead of mutating the process
// environment.
func NewConfigLoaderWithEnv(basePath string, lookupEnv func(string) (string, bool)) ConfigLoader {
	return &viperConfigLoader{basePath: basePath, lookupEnv: lookupEnv}
}

// defaultConfig returns a Config populated with the stock rotation policy.
// The roster and task catalog have no defaults; they must be configured.
func defaultConfig() models.Config {
	return models.Config{
		TasksPerPerson:        3,
		ReducedTasksPerPerson: 2,
		ReducedOpsDays:        []string{"Monday"},
		OnboardingSchedule:    map[string]string{"monday": "FTE", "tuesday": "Contractor"},
		HistoryPath:           "selection_history.yaml",
		Timezone:              "America/Los_Angeles",
		RunHour:               9,
		RunWindowMinutes:      10,
	}
}

// Load reads .rotabot.yaml (if present), applies environment overrides, and
// validates the result. The returned Config is treated as immutable for the
// rest of the run.
func (l *viperConfigLoader) Load() (models.Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName(".rotabot")
	v.SetConfigType("yaml")
	v.AddConfigPath(l.basePath)

	v.SetDefault("tasks_per_person", cfg.TasksPerPerson)
	v.SetDefault("reduced_tasks_per_person", cfg.ReducedTasksPerPerson)
	v.SetDefault("reduced_ops_days", cfg.ReducedOpsDays)
	v.SetDefault("history_path", cfg.HistoryPath)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("run_hour", cfg.RunHour)
	v.SetDefault("run_window_minutes", cfg.RunWindowMinutes)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return models.Config{}, fmt.Errorf("reading .rotabot.yaml: %w", err)
		}
		// No config file found; defaults plus environment apply.
	}

	for _, name := range v.GetStringSlice("roster") {
		cfg.Roster = append(cfg.Roster, models.Person(name))
	}
	if ops := v.GetStringSlice("operations"); len(ops) > 0 {
		cfg.Operations = ops
	}
	if exclusions := v.GetStringMapStringSlice("exclusions"); len(exclusions) > 0 {
		cfg.Exclusions = make(map[string][]string, len(exclusions))
		for day, names := range exclusions {
			cfg.Exclusions[strings.ToLower(day)] = names
		}
	}
	if sched := v.GetStringMapString("onboarding_schedule"); len(sched) > 0 {
		cfg.OnboardingSchedule = make(map[string]string, len(sched))
		for day, typ := range sched {
			cfg.OnboardingSchedule[strings.ToLower(day)] = typ
		}
	}
	cfg.TasksPerPerson = v.GetInt("tasks_per_person")
	cfg.ReducedTasksPerPerson = v.GetInt("reduced_tasks_per_person")
	cfg.ReducedOpsDays = v.GetStringSlice("reduced_ops_days")
	cfg.WebhookURL = v.GetString("webhook_url")
	cfg.HistoryPath = v.GetString("history_path")
	cfg.Timezone = v.GetString("timezone")
	cfg.RunHour = v.GetInt("run_hour")
	cfg.RunWindowMinutes = v.GetInt("run_window_minutes")

	if err := l.applyEnv(&cfg); err != nil {
		return models.Config{}, err
	}

	if err := validateConfig(cfg); err != nil {
		return models.Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays environment-variable overrides onto cfg.
func (l *viperConfigLoader) applyEnv(cfg *models.Config) error {
	env := l.getenv

	if people := ParseList(env("PEOPLE")); len(people) > 0 {
		cfg.Roster = nil
		for _, name := range people {
			cfg.Roster = append(cfg.Roster, models.Person(name))
		}
	}
	if ops := ParseList(env("OPERATIONS")); len(ops) > 0 {
		cfg.Operations = ops
	}
	if days := ParseList(env("REDUCED_OPS_DAYS")); len(days) > 0 {
		cfg.ReducedOpsDays = days
	}
	if raw := strings.TrimSpace(env("TASKS_PER_PERSON")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return configErrorf("TASKS_PER_PERSON %q is not an integer", raw)
		}
		cfg.TasksPerPerson = n
	}
	if raw := strings.TrimSpace(env("REDUCED_TASKS_PER_PERSON")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return configErrorf("REDUCED_TASKS_PER_PERSON %q is not an integer", raw)
		}
		cfg.ReducedTasksPerPerson = n
	}
	if raw := strings.TrimSpace(env("ONBOARDING_SCHEDULE")); raw != "" {
		sched, err := ParseOnboardingSchedule(raw)
		if err != nil {
			return err
		}
		cfg.OnboardingSchedule = sched
	}
	if url := strings.TrimSpace(env("SLACK_WEBHOOK_URL")); url != "" {
		cfg.WebhookURL = url
	}
	if path := strings.TrimSpace(env("HISTORY_FILE")); path != "" {
		cfg.HistoryPath = path
	}
	if tz := strings.TrimSpace(env("TIMEZONE")); tz != "" {
		cfg.Timezone = tz
	}
	if Truthy(env("FORCE_RUN")) {
		cfg.ForceRun = true
	}
	if day := strings.TrimSpace(env("SIMULATE_DAY")); day != "" {
		cfg.SimulateDay = day
	}

	// MONDAY_EXCLUSIONS, TUESDAY_EXCLUSIONS, and so on.
	for _, day := range weekdayNames {
		raw, ok := l.lookupEnv(strings.ToUpper(day) + "_EXCLUSIONS")
		if !ok {
			continue
		}
		if cfg.Exclusions == nil {
			cfg.Exclusions = make(map[string][]string)
		}
		// An explicitly empty variable clears the day's exclusions.
		cfg.Exclusions[day] = ParseList(raw)
	}

	return nil
}

func (l *viperConfigLoader) getenv(key string) string {
	value, _ := l.lookupEnv(key)
	return value
}

// validateConfig rejects malformed values. An empty roster or task catalog
// is not rejected here: loading must succeed on an unconfigured machine so
// commands like version and help still work, and the run command surfaces
// the missing pieces at selection time.
func validateConfig(cfg models.Config) error {
	if cfg.TasksPerPerson < 1 {
		return configErrorf("tasks_per_person must be at least 1, got %d", cfg.TasksPerPerson)
	}
	if cfg.ReducedTasksPerPerson < 1 {
		return configErrorf("reduced_tasks_per_person must be at least 1, got %d", cfg.ReducedTasksPerPerson)
	}
	if cfg.RunHour < 0 || cfg.RunHour > 23 {
		return configErrorf("run_hour %d is invalid, must be between 0 and 23", cfg.RunHour)
	}
	if cfg.RunWindowMinutes < 1 || cfg.RunWindowMinutes > 60 {
		return configErrorf("run_window_minutes %d is invalid, must be between 1 and 60", cfg.RunWindowMinutes)
	}
	for day := range cfg.Exclusions {
		if !isWeekdayName(day) {
			return configErrorf("exclusions key %q is not a weekday name", day)
		}
	}
	for _, day := range cfg.ReducedOpsDays {
		if !isWeekdayName(day) {
			return configErrorf("reduced ops day %q is not a weekday name", day)
		}
	}
	return nil
}

// ParseOnboardingSchedule parses "Monday:FTE,Tuesday:Contractor" into a map
// keyed by lowercase weekday name. Malformed entries are configuration
// errors.
func ParseOnboardingSchedule(raw string) (map[string]string, error) {
	schedule := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		day, typ, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, configErrorf("onboarding schedule entry %q is missing a colon", entry)
		}
		day = strings.ToLower(strings.TrimSpace(day))
		typ = strings.TrimSpace(typ)
		if !isWeekdayName(day) {
			return nil, configErrorf("onboarding schedule day %q is not a weekday name", day)
		}
		if typ == "" {
			return nil, configErrorf("onboarding schedule entry %q has an empty type", entry)
		}
		schedule[day] = typ
	}
	return schedule, nil
}

// ParseList splits a comma- or newline-separated value into trimmed,
// non-empty items.
func ParseList(raw string) []string {
	var items []string
	for _, item := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Truthy reports whether an environment value means "enabled".
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func isWeekdayName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, day := range weekdayNames {
		if day == name {
			return true
		}
	}
	return false
}
