package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/content"
)

var chatCmd = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask the study assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd, buildOpts{withLLM: true})
		if err != nil {
			return err
		}
		defer svc.close()

		if svc.assistant == nil {
			return errors.New("no LLM provider configured: set MONEYPATH_LLM_PROVIDER and its API key")
		}

		ctx := cmd.Context()
		if newThread, _ := cmd.Flags().GetBool("new"); newThread {
			if err := svc.assistant.Reset(ctx); err != nil {
				return fmt.Errorf("new chat thread: %w", err)
			}
		}

		var lc chat.LessonContext
		if lessonSlug, _ := cmd.Flags().GetString("lesson"); lessonSlug != "" {
			path, lesson, err := content.LoadLesson(ctx, svc.content, svc.pathSlug, lessonSlug)
			if err != nil {
				return fmt.Errorf("load lesson: %w", err)
			}
			if lesson == nil {
				return fmt.Errorf("lesson %q not found", lessonSlug)
			}
			lc = chat.ContextFor(path, lesson)
		}

		reply, err := svc.assistant.Ask(ctx, strings.Join(args, " "), lc)
		if err != nil {
			return err
		}
		fmt.Println(reply.Text)
		if len(reply.FollowUps) > 0 {
			fmt.Println()
			for _, f := range reply.FollowUps {
				fmt.Println("  •", f)
			}
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().String("lesson", "", "Lesson slug to ask about, within --path")
	chatCmd.Flags().Bool("new", false, "Start a new conversation thread first")
}
