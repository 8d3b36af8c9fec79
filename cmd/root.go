package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/moneypath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "moneypath",
	Short: "Financial literacy lessons in your terminal",
	Long:  "MoneyPath: step-by-step money lessons with action checklists, quizzes and a study assistant.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MONEYPATH_DB env var)")
	pf.String("content-file", "", "Read lessons from a YAML bundle instead of the CMS")
	pf.String("user", "", "Learner id to use when no access token is configured")
	pf.String("path", "", "Learning path slug (overrides MONEYPATH_PATH env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
