package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress [path]",
	Short: "Show lesson progress for a learning path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd, buildOpts{})
		if err != nil {
			return err
		}
		defer svc.close()

		slug := svc.pathSlug
		if len(args) == 1 {
			slug = args[0]
		}
		if slug == "" {
			return fmt.Errorf("no learning path given")
		}

		ctx := cmd.Context()
		path, err := svc.content.FetchPath(ctx, slug)
		if err != nil {
			return fmt.Errorf("fetch path: %w", err)
		}
		if path == nil {
			return fmt.Errorf("learning path %q not found", slug)
		}
		path = path.Sorted()

		recs, err := svc.store.ProgressRepo().ListByCourse(ctx, svc.identity.UserID, path.ID)
		if err != nil {
			return fmt.Errorf("list progress: %w", err)
		}
		done := make(map[string]bool, len(recs))
		for _, r := range recs {
			if r.Completed {
				done[r.LessonID] = true
			}
		}

		fmt.Printf("%s (%s)\n", path.Title, svc.identity.UserID)
		fmt.Println(strings.Repeat("─", 60))

		var total, completed int
		for _, m := range path.Modules {
			if len(m.Lessons) == 0 {
				continue
			}
			fmt.Println(m.Title)
			for _, l := range m.Lessons {
				mark := " "
				if done[l.ID] {
					mark = "✓"
					completed++
				}
				total++
				premium := ""
				if l.Premium {
					premium = "  (premium)"
				}
				fmt.Printf("  [%s] %-40s%s\n", mark, l.Title, premium)
			}
		}

		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%d of %d lessons complete\n", completed, total)
		return nil
	},
}
