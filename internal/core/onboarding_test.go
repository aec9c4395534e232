package core

import (
	"testing"

	"github.com/baysideops/rotabot/pkg/models"
)

func TestAssignOnboarding_NoTypeScheduled(t *testing.T) {
	if got := AssignOnboarding(testRand(), models.Roster{"Casey"}, ""); got != nil {
		t.Fatalf("expected nil without a scheduled type, got %v", got)
	}
}

func TestAssignOnboarding_EmptyPool(t *testing.T) {
	if got := AssignOnboarding(testRand(), nil, "FTE"); got != nil {
		t.Fatalf("expected nil for an empty pool, got %v", got)
	}
}

func TestAssignOnboarding_PicksFromPool(t *testing.T) {
	pool := models.Roster{"Casey", "Drew", "Ellis"}
	inPool := map[models.Person]bool{"Casey": true, "Drew": true, "Ellis": true}

	rng := testRand()
	for i := 0; i < 20; i++ {
		got := AssignOnboarding(rng, pool, "Contractor")
		if got == nil {
			t.Fatal("expected an assignment")
		}
		if got.Type != "Contractor" {
			t.Fatalf("unexpected type %q", got.Type)
		}
		if !inPool[got.Person] {
			t.Fatalf("%s is not in the pool", got.Person)
		}
	}
}
