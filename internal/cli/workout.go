package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Show today's recommended workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		w := d.Store.DailyWorkout()
		fmt.Printf("Today's workout (%s) — focus: %s\n", w.Date, w.FocusArea)
		for _, id := range w.DrillIDs {
			drill := d.Catalog.DrillByID(id)
			if drill == nil {
				continue
			}
			done := " "
			if d.Store.IsDrillCompleted(id) {
				done = "x"
			}
			fmt.Printf("  [%s] %-24s %2d min  +%d XP  (%s)\n",
				done, drill.Name, drill.DurationMinutes, drill.XPReward, drill.Difficulty)
		}
		fmt.Printf("Total: %d min, +%d XP on completion\n", w.DurationMinutes, w.XPReward)
		return nil
	},
}

var workoutDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Record today's workout as completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		w := d.Store.DailyWorkout()
		res, err := d.Store.CompleteWorkout(w.ID, w.DurationMinutes, w.XPReward)
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
	workoutCmd.AddCommand(workoutDoneCmd)
	rootCmd.AddCommand(workoutCmd)
}
