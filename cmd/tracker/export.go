package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SemTiOne/personal-finance-tracker/internal/cli"
	"github.com/SemTiOne/personal-finance-tracker/internal/report"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Long:  `Write transactions for a date range as CSV in canonical field order.`,
		RunE:  runExport,
	}

	cmd.Flags().StringP("start", "s", "", "start date (default: first of current month)")
	cmd.Flags().StringP("end", "e", "", "end date (default: last of current month)")
	cmd.Flags().StringP("output", "o", "", "output file (default: <reports dir>/transactions_<start>_to_<end>.csv)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	output, _ := cmd.Flags().GetString("output")

	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.GetTransactions(ctx, service.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}

	if len(transactions) == 0 {
		fmt.Println(cli.FormatInfo("No transactions to export."))
		return nil
	}

	if output == "" {
		output = filepath.Join(reportsDir(), fmt.Sprintf("transactions_%s_to_%s.csv",
			start.Format("2006-01-02"), end.Format("2006-01-02")))
	}

	if err := os.MkdirAll(filepath.Dir(output), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	if err := report.ExportCSV(f, transactions); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(transactions), output)))
	return nil
}
