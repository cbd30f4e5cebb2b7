package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/radprep/internal/grading"
)

var respondCmd = &cobra.Command{
	Use:   "respond <item-id>",
	Short: "Record a learner response to an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		correct, _ := cmd.Flags().GetBool("correct")
		latency, _ := cmd.Flags().GetInt("latency-ms")
		confidence, _ := cmd.Flags().GetString("confidence")

		it, err := a.RecordResponse(cmd.Context(), grading.Response{
			ItemID:     args[0],
			Correct:    correct,
			LatencyMs:  latency,
			Confidence: grading.Confidence(confidence),
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s, ease %.2f, interval %dd, next due %s\n",
			it.ID, it.Mastery, it.EaseFactor, it.IntervalDays,
			it.DueAt.Format(time.DateOnly))
		return nil
	},
}

func init() {
	respondCmd.Flags().Bool("correct", false, "Whether the response was correct")
	respondCmd.Flags().Int("latency-ms", 0, "Response latency in milliseconds")
	respondCmd.Flags().String("confidence", "", "Self-reported confidence: low or high")
}
