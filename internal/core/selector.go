package core

import (
	"math/rand"
	"strings"

	"github.com/baysideops/rotabot/pkg/models"
)

// HistoryView is the slice of the selection history the planner needs for
// one run: the Service Desk pairs from the two immediately preceding
// scheduled weekdays, and the Operations tasks from the most recent run.
type HistoryView struct {
	Previous       []models.Person
	BeforePrevious []models.Person
	LastOps        map[models.Person][]string
}

// StreakBlocked returns the casefolded names of people selected on both of
// the two preceding scheduled weekdays. Picking them again today would make
// three in a row.
func (v HistoryView) StreakBlocked() map[string]bool {
	if len(v.Previous) == 0 || len(v.BeforePrevious) == 0 {
		return nil
	}

	earlier := make(map[string]bool, len(v.BeforePrevious))
	for _, p := range v.BeforePrevious {
		earlier[strings.ToLower(string(p))] = true
	}

	blocked := make(map[string]bool)
	for _, p := range v.Previous {
		if key := strings.ToLower(string(p)); earlier[key] {
			blocked[key] = true
		}
	}
	return blocked
}

// SelectServiceDesk draws 2 distinct people for Service Desk duty,
// uniformly at random without replacement from the eligible pool minus the
// streak-blocked set. When blocking would leave fewer than 2 candidates the
// block is waived for the minimum number of people necessary; relaxed
// reports that this deliberate rule exception occurred so the caller can
// log it. Fewer than 2 eligible people before streak filtering is a
// configuration error.
func SelectServiceDesk(rng *rand.Rand, eligible models.Roster, hist HistoryView) (pair []models.Person, relaxed bool, err error) {
	if len(eligible) < 2 {
		return nil, false, configErrorf("need at least 2 eligible people for Service Desk, have %d", len(eligible))
	}

	blocked := hist.StreakBlocked()

	candidates := make(models.Roster, 0, len(eligible))
	for _, person := range eligible {
		if blocked[strings.ToLower(string(person))] {
			continue
		}
		candidates = append(candidates, person)
	}

	// Waive the streak block one person at a time until a pair is possible.
	if len(candidates) < 2 {
		for _, person := range eligible {
			if len(candidates) >= 2 {
				break
			}
			if blocked[strings.ToLower(string(person))] {
				candidates = append(candidates, person)
				relaxed = true
			}
		}
	}

	order := rng.Perm(len(candidates))
	pair = []models.Person{candidates[order[0]], candidates[order[1]]}
	return pair, relaxed, nil
}
