package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SemTiOne/personal-finance-tracker/internal/cli"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display transactions for a date range, optionally filtered by category.`,
		RunE:  runList,
	}

	cmd.Flags().StringP("start", "s", "", "start date (default: first of current month)")
	cmd.Flags().StringP("end", "e", "", "end date (default: last of current month)")
	cmd.Flags().StringP("category", "c", "", "filter by category")
	cmd.Flags().IntP("limit", "n", 0, "maximum number of transactions (0 = all)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

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
		Category:  category,
		Limit:     limit,
	})
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}

	if len(transactions) == 0 {
		fmt.Println(cli.FormatInfo("No transactions found for this period."))
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Transactions %s to %s",
		start.Format("2006-01-02"), end.Format("2006-01-02"))))
	cli.WriteTransactionsTable(os.Stdout, transactions)
	return nil
}
