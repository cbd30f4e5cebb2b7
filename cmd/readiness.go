package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/radprep/internal/session"
	"github.com/abhisek/radprep/internal/ui/theme"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Estimate exam readiness from recent accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rep := a.Tracker.Report()

		fmt.Println(theme.Title.Render("Exam readiness"))
		fmt.Printf("%s %s (%s)\n\n", theme.Bar(rep.Score, 30), theme.Accuracy(rep.Score), rep.Band)

		for _, st := range rep.Sections {
			fmt.Printf("%-22s %s %s\n", st.Section.Name, theme.Bar(st.Accuracy, 20), theme.Accuracy(st.Accuracy))
		}

		weak := a.Tracker.WeakSections(session.DefaultWeakThreshold)
		if len(weak) > 0 {
			fmt.Println()
			fmt.Println(theme.Caution.Render("Focus next:"))
			for _, id := range weak {
				sec, _ := a.Table.Get(id)
				fmt.Println("  " + sec.Name)
			}
		}
		return nil
	},
}
