// Package internal provides the App struct that wires all rotabot
// components together and initializes the CLI layer.
package internal

import (
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/baysideops/rotabot/internal/cli"
	"github.com/baysideops/rotabot/internal/core"
	"github.com/baysideops/rotabot/internal/observability"
	"github.com/baysideops/rotabot/internal/storage"
	"github.com/baysideops/rotabot/pkg/models"
)

// App holds all service dependencies for rotabot.
type App struct {
	BasePath string

	Config  models.Config
	History storage.HistoryStore

	EventLog observability.EventLog
	Notifier observability.Notifier
}

// NewApp loads configuration and wires all components. basePath is the
// directory holding .rotabot.yaml and, unless overridden, the history file.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	cfg, err := core.NewConfigLoader(basePath).Load()
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	historyPath := cfg.HistoryPath
	if !filepath.IsAbs(historyPath) {
		historyPath = filepath.Join(basePath, historyPath)
	}
	app.History = storage.NewHistoryStore(historyPath)

	if cfg.WebhookURL != "" {
		app.Notifier = observability.NewSlackNotifier(cfg.WebhookURL)
	} else {
		// No webhook configured: print the message instead of posting it.
		app.Notifier = observability.NewLogNotifier(os.Stdout)
	}

	eventLogPath := filepath.Join(basePath, ".rotabot_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: the run proceeds without an event log.
		app.EventLog = nil
	}

	// Wire CLI layer.
	cli.Config = app.Config
	cli.History = app.History
	cli.Notifier = app.Notifier
	cli.EventLog = app.EventLog
	cli.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

	return app, nil
}

// ResolveBasePath determines the data directory: $ROTABOT_HOME when set,
// otherwise the nearest ancestor directory containing .rotabot.yaml,
// falling back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("ROTABOT_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	cwd := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".rotabot.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}
