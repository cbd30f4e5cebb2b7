package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored review data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes every item and response; re-run with --force to confirm")
		}
		path, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("nothing to reset")
				return nil
			}
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("deleted", path)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion of the database file")
}
