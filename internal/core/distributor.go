package core

import (
	"math/rand"
	"strings"

	"github.com/baysideops/rotabot/pkg/models"
)

// DistributeOperations assigns each remaining person exactly perPerson
// tasks from the catalog. For each person the catalog is shuffled and tasks
// the person did not have on the previous run are preferred, so nobody
// repeats a task two runs in a row while fresh tasks remain. A task may be
// assigned to more than one person in the same run; within one person's
// list a task repeats only when the catalog itself is smaller than
// perPerson, a deliberate degrade-gracefully policy for small catalogs.
func DistributeOperations(rng *rand.Rand, remaining models.Roster, catalog []string, perPerson int, lastOps map[models.Person][]string) (map[models.Person][]string, error) {
	if len(remaining) == 0 {
		return map[models.Person][]string{}, nil
	}
	if len(catalog) == 0 {
		return nil, configErrorf("no operations tasks configured; set OPERATIONS or operations in .rotabot.yaml")
	}
	if perPerson < 1 {
		return nil, configErrorf("tasks per person must be at least 1, got %d", perPerson)
	}

	assignments := make(map[models.Person][]string, len(remaining))
	for _, person := range remaining {
		previous := make(map[string]bool, len(lastOps[person]))
		for _, name := range lastOps[person] {
			previous[strings.ToLower(name)] = true
		}

		// Shuffle, then stable-partition fresh tasks ahead of repeats.
		var fresh, repeats []string
		for _, i := range rng.Perm(len(catalog)) {
			task := catalog[i]
			if previous[strings.ToLower(models.TaskDisplayName(task))] {
				repeats = append(repeats, task)
			} else {
				fresh = append(fresh, task)
			}
		}

		picked := append(fresh, repeats...)
		if len(picked) > perPerson {
			picked = picked[:perPerson]
		}

		// Catalog smaller than the per-person count: wrap with reuse.
		distinct := len(picked)
		for i := 0; len(picked) < perPerson; i++ {
			picked = append(picked, picked[i%distinct])
		}

		assignments[person] = picked
	}

	return assignments, nil
}
