package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lesson API for the web front end",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd, buildOpts{withLLM: true})
		if err != nil {
			return err
		}
		defer svc.close()

		if svc.cfg.Auth.JWTSecret == "" {
			return errors.New("serve needs MONEYPATH_JWT_SECRET to verify access tokens")
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			svc.cfg.HTTP.Addr = addr
		}

		deps := server.Deps{
			Content:    svc.content,
			Progress:   svc.store.ProgressRepo(),
			Access:     svc.access,
			Milestones: svc.milestones,
			Analytics:  svc.analytics,
			Verifier:   auth.NewVerifier(svc.cfg.Auth.JWTSecret),
			Log:        svc.log,
			Locale:     svc.cfg.Locale,
		}
		if svc.assistant != nil {
			deps.Chat = svc.assistant
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(svc.cfg.HTTP, deps).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MONEYPATH_HTTP_ADDR env var)")
}
