package cmd

import (
	"github.com/abhisek/radprep/internal/app"
	"github.com/abhisek/radprep/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "radprep",
	Short: "Adaptive study scheduler for the radiology CORE exam",
	Long: "Radprep schedules recurring practice items with a modified SM-2 " +
		"algorithm, tracks per-section performance, and assembles weighted " +
		"study sessions and full exam simulations.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RADPREP_DB env var)")
	rootCmd.PersistentFlags().String("sections", "", "Path to a custom section-table JSON file")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(respondCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(readinessCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then RADPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp assembles the engine for a command invocation.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	opts := app.DefaultOptions(dbPath)
	opts.SectionsPath, _ = cmd.Flags().GetString("sections")
	return app.Open(cmd.Context(), opts)
}
