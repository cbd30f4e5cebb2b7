package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/radprep/internal/exam"
)

var registerCmd = &cobra.Command{
	Use:   "register <item-id>",
	Short: "Register a practice item for scheduling",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		sectionFlag, _ := cmd.Flags().GetString("section")
		difficultyFlag, _ := cmd.Flags().GetString("difficulty")

		difficulty, err := exam.ParseDifficulty(difficultyFlag)
		if err != nil {
			return err
		}

		it, err := a.Scheduler.Register(cmd.Context(), args[0],
			exam.SectionID(sectionFlag), difficulty, time.Now().UTC())
		if err != nil {
			return err
		}

		fmt.Printf("registered %s (%s, %s), due %s\n",
			it.ID, it.Section, it.Difficulty, it.DueAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	registerCmd.Flags().String("section", "", "Exam section slug (required)")
	registerCmd.Flags().String("difficulty", string(exam.DifficultyIntermediate), "easy, intermediate, or hard")
	_ = registerCmd.MarkFlagRequired("section")
}
