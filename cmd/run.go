package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/abhisek/moneypath/internal/app"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/screens/home"
	lessonscreen "github.com/abhisek/moneypath/internal/screens/lesson"
	"github.com/abhisek/moneypath/internal/screens/pathmap"
	"github.com/abhisek/moneypath/internal/screens/welcome"
)

// runApp builds dependencies and launches the TUI. With a path slug it
// opens that path's map, and with a lesson slug too, that lesson, instead
// of the welcome screen.
func runApp(cmd *cobra.Command, pathSlug, lessonSlug string) error {
	svc, err := buildServices(cmd, buildOpts{logToFile: true, withLLM: true, notify: true})
	if err != nil {
		return err
	}
	defer svc.close()

	env := svc.env()
	if pathSlug != "" {
		env.PathSlug = pathSlug
	}
	if env.PathSlug == "" {
		return errors.New("no learning path configured: pass --path or set MONEYPATH_PATH")
	}

	var root screen.Screen
	switch {
	case lessonSlug != "":
		root = lessonscreen.New(env, env.PathSlug, lessonSlug)
	case pathSlug != "":
		root = pathmap.New(env, env.PathSlug)
	default:
		root = welcome.New(func() screen.Screen { return home.New(env) }, env.ReducedMotion())
	}

	svc.log.Info("starting terminal app", "path", env.PathSlug, "user_id", env.UserID())
	return app.Run(env, root)
}

var learnCmd = &cobra.Command{
	Use:   "learn <path> [lesson]",
	Short: "Open a learning path, or one of its lessons, directly",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lesson := ""
		if len(args) == 2 {
			lesson = args[1]
		}
		return runApp(cmd, args[0], lesson)
	},
}
