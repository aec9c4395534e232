package core

import (
	"strings"

	"github.com/baysideops/rotabot/pkg/models"
)

// EligiblePeople filters the roster down to the people not excluded on the
// given day. Exclusion matching is case-insensitive. An empty roster, or a
// roster emptied by exclusions, is a configuration error: no valid
// assignment is possible.
func EligiblePeople(roster models.Roster, policy models.DayPolicy) (models.Roster, error) {
	if len(roster) == 0 {
		return nil, configErrorf("no people configured; set PEOPLE or roster in .rotabot.yaml")
	}

	eligible := make(models.Roster, 0, len(roster))
	for _, person := range roster {
		if policy.Excluded[strings.ToLower(string(person))] {
			continue
		}
		eligible = append(eligible, person)
	}

	if len(eligible) == 0 {
		return nil, configErrorf("every roster member is excluded on %s", policy.Weekday)
	}
	return eligible, nil
}
