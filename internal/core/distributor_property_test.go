package core

import (
	"fmt"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/baysideops/rotabot/pkg/models"
)

// Property: every remaining person receives exactly the configured number
// of tasks, each drawn from the catalog, with no duplicate inside one
// person's list whenever the catalog is large enough to allow it.
func TestProperty_DistributionCountsAndUniqueness(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		people := rapid.IntRange(1, 6).Draw(rt, "people")
		catalogSize := rapid.IntRange(1, 8).Draw(rt, "catalog")
		perPerson := rapid.IntRange(1, 4).Draw(rt, "perPerson")
		seed := rapid.Int64().Draw(rt, "seed")

		remaining := make(models.Roster, people)
		for i := range remaining {
			remaining[i] = models.Person(fmt.Sprintf("person-%d", i))
		}
		catalog := make([]string, catalogSize)
		inCatalog := make(map[string]bool, catalogSize)
		for i := range catalog {
			catalog[i] = fmt.Sprintf("task-%d", i)
			inCatalog[catalog[i]] = true
		}

		assignments, err := DistributeOperations(rand.New(rand.NewSource(seed)), remaining, catalog, perPerson, nil)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if len(assignments) != people {
			rt.Fatalf("expected %d assignment lists, got %d", people, len(assignments))
		}

		for person, tasks := range assignments {
			if len(tasks) != perPerson {
				rt.Fatalf("%s: expected %d tasks, got %d", person, perPerson, len(tasks))
			}
			seen := make(map[string]int, len(tasks))
			for _, task := range tasks {
				if !inCatalog[task] {
					rt.Fatalf("%s: task %q not in catalog", person, task)
				}
				seen[task]++
			}
			if catalogSize >= perPerson && len(seen) != perPerson {
				rt.Fatalf("%s: duplicate tasks %v with a catalog of %d", person, tasks, catalogSize)
			}
		}
	})
}
