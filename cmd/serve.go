package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andyli/portfolio/internal/analytics"
	"github.com/andyli/portfolio/internal/asset"
	"github.com/andyli/portfolio/internal/config"
	"github.com/andyli/portfolio/internal/content"
	"github.com/andyli/portfolio/internal/logger"
	"github.com/andyli/portfolio/internal/server"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig(getConfigFile())
	if err != nil {
		return err
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer func() { _ = logger.CloseGlobal() }()
	log := logger.GetServerLogger()

	catalog, err := content.Load(cfg.Content.Path)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load catalog")
		return err
	}
	contentLog := logger.GetContentLogger()
	contentLog.Info().
		Int("projects", len(catalog.Projects())).
		Int("experiences", len(catalog.Experiences())).
		Int("skills", len(catalog.Skills())).
		Msg("Catalog loaded")

	deps := server.Deps{Catalog: catalog, Animation: &asset.Animation{}}

	if cfg.Analytics.Enabled {
		store, err := analytics.Open(ctx, cfg.Analytics.Database)
		if err != nil {
			log.Error().Err(err).Msg("Failed to open analytics database")
			return err
		}
		defer func() { _ = store.Close() }()

		if _, err := store.Cleanup(ctx, cfg.Analytics.Retention); err != nil {
			analyticsLog := logger.GetAnalyticsLogger()
			analyticsLog.Warn().Err(err).Msg("Privacy cleanup failed")
		}
		deps.Analytics = store
	}

	if cfg.Animation.Enabled {
		deps.Animation.LoadAsync(ctx, asset.NewFetcher(cfg.Animation.URL, cfg.Animation.Timeout))
	}

	srv, err := server.New(cfg, deps)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build server")
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped")
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		return errors.Wrap(err, "shutdown")
	}
	return <-errCh
}
