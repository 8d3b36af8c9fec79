package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/moneypath/internal/access"
	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/config"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/llm"
	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/settings"
	"github.com/abhisek/moneypath/internal/store"
)

// localUser identifies the learner when neither a token nor --user is set.
const localUser = "local"

// services is everything a command may need, built from config and flags.
type services struct {
	cfg        config.Config
	log        *logger.Logger
	store      *store.Store
	content    content.Provider
	settings   *settings.Settings
	access     *access.Checker
	analytics  analytics.Sink
	milestones *milestones.Service
	assistant  *chat.Assistant
	identity   *auth.Identity
	pathSlug   string
}

type buildOpts struct {
	// logToFile keeps log lines off the terminal the TUI draws on.
	logToFile bool

	// withLLM builds the chat assistant when a provider is configured.
	withLLM bool

	// notify publishes earned milestones for the TUI toast.
	notify bool
}

// buildServices loads config, opens the store and wires every service.
// Call close when done.
func buildServices(cmd *cobra.Command, opts buildOpts) (*services, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(func(c *config.Config) {
		if f, _ := cmd.Flags().GetString("content-file"); f != "" {
			c.Content.Source = "file"
			c.Content.File = f
		}
		if p, _ := cmd.Flags().GetString("path"); p != "" {
			c.PathSlug = p
		}
	})
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	logOpts := logger.Options{Mode: cfg.Env, OutputPath: cfg.LogFile}
	if opts.logToFile && logOpts.OutputPath == "" {
		logOpts.OutputPath = filepath.Join(filepath.Dir(dbPath), "moneypath.log")
	}
	log, err := logger.New(logOpts)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &services{cfg: cfg, log: log, store: st}
	if err := s.wire(ctx, cmd, opts); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *services) wire(ctx context.Context, cmd *cobra.Command, opts buildOpts) error {
	cfg := s.cfg

	switch cfg.Content.Source {
	case "file":
		fp, err := content.NewFileProvider(cfg.Content.File)
		if err != nil {
			return fmt.Errorf("load content bundle: %w", err)
		}
		s.content = fp
		s.pathSlug = cfg.PathSlug
		if s.pathSlug == "" {
			if slugs := fp.PathSlugs(); len(slugs) > 0 {
				s.pathSlug = slugs[0]
			}
		}
	default:
		s.content = content.NewCMSProvider(content.CMSConfig{
			ProjectID:  cfg.Content.ProjectID,
			Dataset:    cfg.Content.Dataset,
			APIVersion: cfg.Content.APIVersion,
			Token:      cfg.Content.Token,
			UseCDN:     cfg.Content.UseCDN,
			Timeout:    cfg.Content.Timeout,
		}, s.log)
		s.pathSlug = cfg.PathSlug
	}
	id, err := resolveIdentity(cmd, cfg.Auth)
	if err != nil {
		return err
	}
	s.identity = id

	s.settings, err = settings.Load(ctx, s.store.SettingsRepo(), cfg.Locale)
	if err != nil {
		return err
	}

	s.access = access.NewChecker(s.store.SubscriptionRepo(), cfg.PremiumGrace)
	s.analytics = analytics.NewStoreSink(s.store.EventRepo(), s.log)
	mcfg := milestones.DefaultConfig()
	mcfg.Silent = !opts.notify
	s.milestones = milestones.NewService(s.store.ProgressRepo(), s.store.MilestoneRepo(), s.log, mcfg)

	if opts.withLLM {
		llmCfg, err := llm.Resolve()
		if err != nil {
			s.log.Info("chat assistant disabled", "reason", err.Error())
			return nil
		}
		provider, err := llm.NewProvider(ctx, llmCfg, s.store.EventRepo(), s.log)
		if err != nil {
			s.log.Warn("chat assistant disabled", "error", err)
			return nil
		}
		s.assistant = chat.New(provider, s.store.ChatRepo(), s.settings, chat.Options{
			Analytics: s.analytics,
			Log:       s.log,
			UserID:    id.UserID,
		})
	}
	return nil
}

// resolveIdentity prefers a verified access token, then --user, then the
// configured user id.
func resolveIdentity(cmd *cobra.Command, cfg config.AuthConfig) (*auth.Identity, error) {
	if cfg.AccessToken != "" {
		if cfg.JWTSecret == "" {
			return nil, errors.New("MONEYPATH_ACCESS_TOKEN needs MONEYPATH_JWT_SECRET to verify it")
		}
		id, err := auth.NewVerifier(cfg.JWTSecret).Parse(cfg.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("access token: %w", err)
		}
		return id, nil
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return &auth.Identity{UserID: u}, nil
	}
	if cfg.UserID != "" {
		return &auth.Identity{UserID: cfg.UserID}, nil
	}
	return &auth.Identity{UserID: localUser}, nil
}

// env returns the services as seen by the terminal screens.
func (s *services) env() *screen.Env {
	return &screen.Env{
		Content:    s.content,
		Progress:   s.store.ProgressRepo(),
		Access:     s.access,
		Identity:   s.identity,
		Milestones: s.milestones,
		Analytics:  s.analytics,
		Assistant:  s.assistant,
		Settings:   s.settings,
		Log:        s.log,
		PathSlug:   s.pathSlug,
	}
}

func (s *services) close() {
	if s.milestones != nil {
		s.milestones.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	s.log.Sync()
}
