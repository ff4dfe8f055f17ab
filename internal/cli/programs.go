package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List training programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		enrolled := make(map[string]float64)
		for _, ep := range d.Store.EnrolledProgramDetails() {
			enrolled[ep.Program.ID] = ep.Progress
		}

		for _, p := range d.Catalog.Programs() {
			status := ""
			if pr, ok := enrolled[p.ID]; ok {
				status = fmt.Sprintf("  enrolled, %s", pct(pr))
			}
			fmt.Printf("%-22s %s (%d weeks, %d drills)%s\n",
				p.ID, p.Name, len(p.Phases), len(p.DrillIDs()), status)
		}
		return nil
	},
}

var enrollCmd = &cobra.Command{
	Use:   "enroll <program-id>",
	Short: "Enroll in a training program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.Store.EnrollProgram(args[0]); err != nil {
			return err
		}
		fmt.Printf("Enrolled in %s\n", args[0])
		return nil
	},
}

var unenrollCmd = &cobra.Command{
	Use:   "unenroll <program-id>",
	Short: "Leave a training program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.Store.UnenrollProgram(args[0]); err != nil {
			return err
		}
		fmt.Printf("Left %s\n", args[0])
		return nil
	},
}

func init() {
	programsCmd.AddCommand(enrollCmd, unenrollCmd)
	rootCmd.AddCommand(programsCmd)
}
