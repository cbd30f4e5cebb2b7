package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Compose a bounded study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		modeFlag, _ := cmd.Flags().GetString("mode")
		count, _ := cmd.Flags().GetInt("count")
		budget, _ := cmd.Flags().GetDuration("budget")
		section, _ := cmd.Flags().GetString("section")
		seed, _ := cmd.Flags().GetInt64("seed")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		mode, ok := session.ParseMode(modeFlag)
		if !ok {
			return fmt.Errorf("unknown mode %q", modeFlag)
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		plan, err := a.Composer.Compose(ctx, session.Request{
			Mode:       mode,
			Count:      count,
			TimeBudget: budget,
			Section:    exam.SectionID(section),
			Seed:       seed,
		})
		if err != nil {
			return err
		}

		printPlan(plan)
		return nil
	},
}

func printPlan(plan *session.Plan) {
	fmt.Printf("plan %s (%s, seed %d)\n", plan.ID, plan.Mode, plan.Seed)
	for i, id := range plan.ItemIDs {
		fmt.Printf("%3d. %s\n", i+1, id)
	}
	if plan.Shortfall > 0 {
		fmt.Printf("insufficient pool: %d of %d slots unfilled\n",
			plan.Shortfall, plan.RequestedCount)
	}
	if plan.Truncated {
		fmt.Println("composition hit the deadline; plan is partial")
	}
	for _, f := range plan.Fills {
		if f.Filled < f.Quota || f.RandomFill > 0 {
			fmt.Printf("section %s: %d/%d by priority, %d random fallback\n",
				f.Section, f.Filled, f.Quota, f.RandomFill)
		}
	}
}

func init() {
	sessionCmd.Flags().String("mode", string(session.ModePractice),
		"practice, weak_area, section_focus, or exam_simulation")
	sessionCmd.Flags().Int("count", 0, "Number of items (0 = derive from --budget)")
	sessionCmd.Flags().Duration("budget", 0, "Study-time budget (alternative to --count)")
	sessionCmd.Flags().String("section", "", "Section slug for section_focus mode")
	sessionCmd.Flags().Int64("seed", 0, "RNG seed for reproducible plans (0 = random)")
	sessionCmd.Flags().Duration("timeout", 0, "Composition deadline (0 = none)")
}
