// Package cli defines the rotabot command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "rotabot",
	Short: "Daily Service Desk and Operations duty rotation",
	Long: `rotabot selects two people for Service Desk duty each weekday, spreads the
Operations task catalog across the rest of the team, designates onboarding
support on scheduled days, and posts the result to the team channel.

It is designed to run as a short-lived cron job; outside its scheduled
window an invocation exits cleanly without side effects.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rotabot %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
