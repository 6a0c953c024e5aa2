package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deppfellow/shoplist/internal/database"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Create or update the shopping_list schema to the latest version.

Migrations are embedded in the binary and tracked in the schema_version
table, so running this twice is harmless.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("list", false, "list the embedded migrations without applying them")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	list, _ := cmd.Flags().GetBool("list")

	if list {
		files, err := database.MigrationFiles()
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	}

	if err := database.Migrate(cmd.Context(), &log, cfg); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
