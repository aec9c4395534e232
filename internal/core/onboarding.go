package core

import (
	"math/rand"

	"github.com/baysideops/rotabot/pkg/models"
)

// AssignOnboarding designates one person for onboarding support when the
// day has a scheduled onboarding type, drawn uniformly at random from the
// remaining pool. The draw is independent of the Operations assignments;
// overlap is intentional, onboarding is an additional duty. Returns nil
// when no onboarding is scheduled or the pool is empty.
func AssignOnboarding(rng *rand.Rand, remaining models.Roster, onboardingType string) *models.OnboardingAssignment {
	if onboardingType == "" || len(remaining) == 0 {
		return nil
	}
	return &models.OnboardingAssignment{
		Person: remaining[rng.Intn(len(remaining))],
		Type:   onboardingType,
	}
}
