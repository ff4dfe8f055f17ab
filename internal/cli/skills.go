package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strikerhq/striker/internal/app/progress"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show mastery progress for every skill path",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		for _, sp := range d.Store.AllSkillsProgress() {
			fmt.Printf("%-14s level %d  %s\n", sp.Skill, sp.CurrentLevel, pct(sp.ProgressPct))
			path := d.Catalog.SkillPath(sp.Skill)
			if path == nil {
				continue
			}
			for _, lvl := range path.Levels {
				mark := "locked"
				unlocked, err := d.Store.IsSkillLevelUnlocked(sp.Skill, lvl.Number)
				if err == nil && unlocked {
					mark = "open"
					if progress.IsLevelProLocked(lvl.Number) {
						mark = "pro"
					}
				}
				fmt.Printf("    L%d (%d drills) [%s]\n", lvl.Number, len(lvl.DrillIDs), mark)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
