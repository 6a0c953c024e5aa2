package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/shoplist/internal/config"
	"github.com/deppfellow/shoplist/internal/logger"
)

var (
	cfg           *config.Config
	loggerService *logger.LoggerService
	log           zerolog.Logger

	rootCmd = &cobra.Command{
		Use:   "shoplist",
		Short: "Shopping list service",
		Long: `shoplist stores a shopping list in PostgreSQL and reports on it.

Configuration is read from SHOPLIST_* environment variables (and a .env
file in the working directory, if present).`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	// Finalizers run whether or not the command succeeded.
	cobra.OnFinalize(flushLogger)

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reportCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService, err = logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return fmt.Errorf("failed to initialize logger service: %w", err)
	}

	log = logger.NewLoggerWithService(cfg.Observability, loggerService)
	return nil
}

// flushLogger sends pending New Relic data and releases the service.
func flushLogger() {
	if loggerService == nil {
		return
	}
	loggerService.Shutdown()
	loggerService = nil
}
