package cmd

import (
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "algodrill",
	Short: "Adaptive DS&A drills in your terminal",
	Long:  "AlgoDrill — terminal app that drills data structures & algorithms with adaptive question selection and spaced review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, strategy.DefaultConfig())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ALGODRILL_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ALGODRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
