package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SemTiOne/personal-finance-tracker/internal/cli"
)

func recategorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize <id> <category>",
		Short: "Change a transaction's category",
		Long: `Re-assign a stored transaction to a different category. The new
category must be type-compatible with the transaction: an income
category cannot be assigned to an expense and vice versa.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}
			category := args[1]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateTransactionCategory(ctx, id, category); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction %d moved to %q", id, category)))
			return nil
		},
	}
}
