package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/baysideops/rotabot/internal/core"
	"github.com/baysideops/rotabot/internal/observability"
	"github.com/baysideops/rotabot/pkg/models"
	"github.com/spf13/cobra"
)

var (
	runForce  bool
	runDay    string
	runDryRun bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run today's duty selection and post the result",
	Long: `Select today's Service Desk pair, distribute Operations tasks among the
remaining team, assign onboarding support if scheduled, and post the result
to the configured webhook.

Outside the scheduled window the command exits cleanly without side
effects; --force (or FORCE_RUN) overrides the window and weekday guard.
--day (or SIMULATE_DAY) applies another weekday's policy, useful for
testing exclusions and reduced-task days.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := Config
		if runForce {
			cfg.ForceRun = true
		}
		if runDay != "" {
			cfg.SimulateDay = runDay
		}

		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
		}
		now := time.Now().In(loc)

		if !core.ShouldRun(now, cfg) {
			fmt.Println("Outside the scheduled run window; skipping. Use --force to override.")
			if !runDryRun {
				logEvent("INFO", "run.skipped", "outside scheduled window", nil)
			}
			return nil
		}

		if History == nil {
			return fmt.Errorf("history store not initialized")
		}
		if err := History.Load(); err != nil {
			return err
		}

		// Streak lookback spans the two preceding scheduled weekdays, so a
		// Monday run checks Friday and Thursday.
		today := now.Format(models.HistoryDateLayout)
		prev := core.PreviousWeekday(now)
		prevPrev := core.PreviousWeekday(prev)
		hist := core.HistoryView{
			Previous:       History.PairOn(prev.Format(models.HistoryDateLayout)),
			BeforePrevious: History.PairOn(prevPrev.Format(models.HistoryDateLayout)),
			LastOps:        History.LastOps(),
		}

		rng := Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		weekday := core.DayName(now, cfg)
		assignment, err := core.NewPlanner(cfg, rng).Plan(now, weekday, hist)
		if err != nil {
			return err
		}

		// A dry run computes and prints the plan but writes nothing, not
		// even events.
		if runDryRun {
			fmt.Println(observability.BuildMessage(*assignment))
			return nil
		}

		logEvent("INFO", "selection.made", "service desk pair selected", map[string]any{
			"date": today, "pair": assignment.ServiceDesk,
		})
		if assignment.StreakRelaxed {
			logEvent("WARN", "streak.relaxed", "no-3-in-a-row block waived to keep two candidates", map[string]any{
				"date": today,
			})
		}

		notifier := Notifier
		if notifier == nil {
			notifier = observability.NewLogNotifier(os.Stdout)
		}

		if err := notifier.Notify(*assignment); err != nil {
			// History stays unsaved so an external retry re-runs cleanly;
			// the computed assignment is still visible locally.
			logEvent("ERROR", "delivery.failed", err.Error(), map[string]any{"date": today})
			fmt.Fprintln(os.Stderr, "Assignment was computed but not delivered:")
			fmt.Fprintln(os.Stderr, observability.BuildMessage(*assignment))
			return err
		}

		if err := History.Append(today, assignment.ServiceDesk, assignment.Operations); err != nil {
			return err
		}
		if err := History.Save(); err != nil {
			return err
		}
		logEvent("INFO", "history.saved", "selection history updated", map[string]any{"date": today})

		return nil
	},
}

func logEvent(level, eventType, msg string, data map[string]any) {
	if EventLog == nil {
		return
	}
	_ = EventLog.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   level,
		Type:    eventType,
		Message: msg,
		Data:    data,
	})
}

func init() {
	runCmd.Flags().BoolVar(&runForce, "force", false, "run even outside the scheduled window")
	runCmd.Flags().StringVar(&runDay, "day", "", "simulate a weekday name (e.g. Monday)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the message without posting or saving history")
	rootCmd.AddCommand(runCmd)
}
