package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/shoplist/internal/database"
	"github.com/deppfellow/shoplist/internal/handler"
	"github.com/deppfellow/shoplist/internal/lib/email"
	"github.com/deppfellow/shoplist/internal/lib/job"
	"github.com/deppfellow/shoplist/internal/repository"
	"github.com/deppfellow/shoplist/internal/router"
	"github.com/deppfellow/shoplist/internal/server"
	"github.com/deppfellow/shoplist/internal/service"
)

// DefaultContextTimeout bounds graceful shutdown.
const DefaultContextTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the report job worker",
		Long: `Start the HTTP API on SHOPLIST_SERVER__PORT. When SHOPLIST_REDIS__ADDRESS
is set the report digest worker runs in the same process.

SIGINT or SIGTERM drains in-flight requests before exiting.`,
		RunE: runServe,
	}

	cmd.Flags().Bool("migrate", false, "apply pending migrations before serving")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	migrate, _ := cmd.Flags().GetBool("migrate")
	if migrate || cfg.IsLocal() {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(ctx, cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories()
	services := service.NewServices(srv, repos)

	var sender job.DigestSender
	if cfg.Integration.ResendAPIKey != "" {
		sender = email.NewClient(cfg, &log)
	} else {
		log.Warn().Msg("resend api key not configured, digests will only be logged")
	}

	if err := srv.StartJobs(job.NewReportHandlers(services.Reports, sender, &log)); err != nil {
		_ = srv.Shutdown(context.Background())
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers, services)
	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
