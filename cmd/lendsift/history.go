package main

import (
	"fmt"
	"log/slog"

	"github.com/lendsift/lendsift/internal/cli"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past qualification runs",
		Long: `Show recent qualification runs recorded in the local history database,
newest first.`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "maximum number of runs to show")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close storage", "error", closeErr)
		}
	}()

	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(runs) == 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("No qualification runs recorded yet."))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("Qualification History"))
	fmt.Fprintln(out, cli.TableHeaderStyle.Render(
		fmt.Sprintf("%-20s %12s %6s %6s %6s %10s  %s",
			"Ran At", "Loan", "Score", "DTI", "LTV", "Qualified", "Saved To")))

	for _, run := range runs {
		saved := run.SavedPath
		if saved == "" {
			saved = "-"
		}
		fmt.Fprintf(out, "%-20s %12.2f %6d %6.2f %6.2f %5d/%-4d  %s\n",
			run.RanAt.Local().Format("2006-01-02 15:04:05"),
			run.LoanAmount, run.CreditScore,
			run.DebtToIncome, run.LoanToValue,
			run.OffersQualified, run.OffersConsidered,
			saved)
	}

	return nil
}
