package cli

import (
	"math/rand"

	"github.com/baysideops/rotabot/internal/observability"
	"github.com/baysideops/rotabot/internal/storage"
	"github.com/baysideops/rotabot/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	Config   models.Config
	History  storage.HistoryStore
	Notifier observability.Notifier
	EventLog observability.EventLog

	// Rand is the process-local source for all selection draws. Tests
	// replace it with a seeded source.
	Rand *rand.Rand
)
