package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeMinutes int

var completeCmd = &cobra.Command{
	Use:   "complete <drill-id>",
	Short: "Record a completed drill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		res, err := d.Store.CompleteDrill(args[0], completeMinutes)
		if err != nil {
			return err
		}

		fmt.Printf("+%d XP", res.XPEarned)
		if res.LeveledUp {
			fmt.Printf("  — LEVEL UP! Now level %d", res.Level)
		}
		fmt.Printf("\nStreak: %d day(s)\n", res.Streak)
		return nil
	},
}

func init() {
	completeCmd.Flags().IntVarP(&completeMinutes, "minutes", "m", 0, "training minutes to record")
	rootCmd.AddCommand(completeCmd)
}
