package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/radprep/internal/session"
)

// examCmd is shorthand for a full exam simulation: 200 items split by
// the CORE weight table.
var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Compose a full exam simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		plan, err := a.Composer.Compose(cmd.Context(), session.Request{
			Mode:  session.ModeExamSimulation,
			Count: count,
			Seed:  seed,
		})
		if err != nil {
			return err
		}

		printPlan(plan)
		return nil
	},
}

func init() {
	examCmd.Flags().Int("count", 200, "Total questions in the simulation")
	examCmd.Flags().Int64("seed", 0, "RNG seed for reproducible plans (0 = random)")
}
