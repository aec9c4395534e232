package core

import (
	"math/rand"
	"strings"
	"time"

	"github.com/baysideops/rotabot/pkg/models"
)

// Planner sequences eligibility filtering, Service Desk selection,
// Operations task distribution, and onboarding assignment into one
// Assignment. It never mutates history; persisting the chosen pair after a
// confirmed delivery is the caller's responsibility.
type Planner struct {
	cfg models.Config
	rng *rand.Rand
}

// NewPlanner creates a Planner using the given random source. Tests inject
// a seeded source for deterministic draws.
func NewPlanner(cfg models.Config, rng *rand.Rand) *Planner {
	return &Planner{cfg: cfg, rng: rng}
}

// Plan computes the full assignment for the given run date and weekday.
func (pl *Planner) Plan(date time.Time, weekday string, hist HistoryView) (*models.Assignment, error) {
	policy := pl.cfg.PolicyFor(weekday)

	eligible, err := EligiblePeople(pl.cfg.Roster, policy)
	if err != nil {
		return nil, err
	}

	pair, relaxed, err := SelectServiceDesk(pl.rng, eligible, hist)
	if err != nil {
		return nil, err
	}

	onDesk := make(map[string]bool, len(pair))
	for _, person := range pair {
		onDesk[strings.ToLower(string(person))] = true
	}
	remaining := make(models.Roster, 0, len(eligible))
	for _, person := range eligible {
		if !onDesk[strings.ToLower(string(person))] {
			remaining = append(remaining, person)
		}
	}

	ops, err := DistributeOperations(pl.rng, remaining, pl.cfg.Operations, policy.TasksPerPerson, hist.LastOps)
	if err != nil {
		return nil, err
	}

	return &models.Assignment{
		Date:          date,
		Weekday:       weekday,
		ServiceDesk:   pair,
		Remaining:     remaining,
		Operations:    ops,
		Onboarding:    AssignOnboarding(pl.rng, remaining, policy.OnboardingType),
		StreakRelaxed: relaxed,
	}, nil
}
