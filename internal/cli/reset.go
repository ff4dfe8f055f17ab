package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetWeekOnly bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset progression state",
	Long:  "Reset all progression state, or just the weekly counters with --week.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		if resetWeekOnly {
			d.Store.ResetWeeklyProgress()
			fmt.Println("Weekly progress reset.")
			return nil
		}
		d.Store.ResetAllProgress()
		fmt.Println("All progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetWeekOnly, "week", false, "reset only this week's counters")
	rootCmd.AddCommand(resetCmd)
}
