package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/radprep/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-section performance",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Println(theme.Title.Render("Section performance"))
		fmt.Println(theme.Header.Render(fmt.Sprintf(
			"%-22s %6s %8s %9s %7s %6s", "section", "weight", "accuracy", "responses", "streak", "best")))

		for _, st := range a.Tracker.Stats() {
			fmt.Printf("%-22s %5.0f%% %s %9d %7d %6d\n",
				st.Section.Name, st.Section.Weight*100,
				theme.Accuracy(st.Accuracy), st.Samples, st.Streak, st.BestStreak)
		}

		if corrupt := a.Scheduler.CorruptItems(); len(corrupt) > 0 {
			fmt.Println()
			fmt.Println(theme.Bad.Render(fmt.Sprintf("%d quarantined item(s):", len(corrupt))))
			for _, ce := range corrupt {
				fmt.Println("  " + ce.Error())
			}
		}
		return nil
	},
}
