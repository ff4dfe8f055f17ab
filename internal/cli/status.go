package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current level, XP, streak, and weekly progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		snap := d.Store.Snapshot()
		fmt.Printf("Level %d  (%d XP, %d to next — %s through level)\n",
			snap.Level, snap.XP, d.Store.XPToNextLevel(), pct(d.Store.LevelProgressPct()))
		fmt.Printf("Streak: %d day(s)\n", snap.Streak)
		fmt.Printf("This week: %d/%d sessions, %d training min, %d app-open min\n",
			snap.SessionsThisWeek, snap.WeeklyGoal, snap.WeeklyMinutes, snap.AppOpenMinutesThisWeek)
		fmt.Printf("Today: %d drill(s) completed\n", snap.DrillsCompletedToday)
		fmt.Printf("All time: %d drill(s), %d workout(s), %d training min\n",
			len(snap.CompletedDrills), len(snap.CompletedWorkouts), snap.TotalTrainingMinutes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
