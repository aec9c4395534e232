package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent Service Desk selections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if History == nil {
			return fmt.Errorf("history store not initialized")
		}
		if err := History.Load(); err != nil {
			return err
		}

		entries := History.RecentEntries(historyLimit)
		if len(entries) == 0 {
			fmt.Println("No selections recorded yet.")
			return nil
		}

		for _, entry := range entries {
			names := make([]string, len(entry.Pair))
			for i, person := range entry.Pair {
				names[i] = string(person)
			}
			fmt.Printf("  %s  %s\n", entry.Date, strings.Join(names, ", "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
