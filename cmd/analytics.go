package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/moneypath/internal/config"
	"github.com/abhisek/moneypath/internal/store"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics [event]",
	Short: "List recorded product analytics events",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		dbPath, err := resolveDBPath(cmd, config.FromEnv().DBPath)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryAnalytics(context.Background(), name, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No analytics events found.")
			return nil
		}

		fmt.Printf("%-19s  %-18s  %-16s  %s\n", "Timestamp", "Event", "User", "Properties")
		fmt.Println(strings.Repeat("─", 90))
		for _, e := range events {
			props, _ := json.Marshal(e.Properties)
			fmt.Printf("%-19s  %-18s  %-16s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Name,
				e.UserID,
				props,
			)
		}
		return nil
	},
}

func init() {
	analyticsCmd.Flags().IntP("limit", "n", 50, "Number of events to show")
}
