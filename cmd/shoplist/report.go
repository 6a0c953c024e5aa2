package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/shoplist/internal/database"
	"github.com/deppfellow/shoplist/internal/lib/utils"
	"github.com/deppfellow/shoplist/internal/repository"
)

// reportQuery runs one report against the open pool.
type reportQuery func(ctx context.Context, db repository.DBTX, reports *repository.ReportRepository) (any, error)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run a report and print it as JSON",
		Long: `Run one of the read-only reports over the shopping list.

Results are written to stdout as JSON; logs go to stderr.`,
	}

	cmd.AddCommand(reportSearchCmd())
	cmd.AddCommand(reportPageCmd())
	cmd.AddCommand(reportSinceCmd())
	cmd.AddCommand(reportTotalsCmd())

	return cmd
}

func reportSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Names of items whose name contains term, case-insensitively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := args[0]
			return runReport(cmd, func(ctx context.Context, db repository.DBTX, reports *repository.ReportRepository) (any, error) {
				return reports.SearchByName(ctx, db, term)
			})
		},
	}
}

func reportPageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page <number>",
		Short: "One page of items in id order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parseIntArg("page number", args[0])
			if err != nil {
				return err
			}
			size, _ := cmd.Flags().GetInt("size")

			return runReport(cmd, func(ctx context.Context, db repository.DBTX, reports *repository.ReportRepository) (any, error) {
				return reports.Paginate(ctx, db, page, size)
			})
		},
	}

	cmd.Flags().Int("size", repository.DefaultPageSize, "items per page")

	return cmd
}

func reportSinceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "since <days>",
		Short: "Items added within the last days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseIntArg("days", args[0])
			if err != nil {
				return err
			}

			return runReport(cmd, func(ctx context.Context, db repository.DBTX, reports *repository.ReportRepository) (any, error) {
				return reports.ItemsAfterDate(ctx, db, days)
			})
		},
	}
}

func reportTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Total cost per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, func(ctx context.Context, db repository.DBTX, reports *repository.ReportRepository) (any, error) {
				return reports.TotalCostByCategory(ctx, db)
			})
		},
	}
}

// runReport opens a pool, runs query and prints the result. The pool is
// closed on every path out.
func runReport(cmd *cobra.Command, query reportQuery) error {
	ctx := cmd.Context()
	cliLog := log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "2006-01-02 15:04:05"})

	db, err := database.New(ctx, cfg, &cliLog, loggerService)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := query(ctx, db.Pool, repository.NewReportRepository())
	if err != nil {
		return err
	}

	return utils.WriteJSON(cmd.OutOrStdout(), result)
}

func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, value)
	}
	return n, nil
}
