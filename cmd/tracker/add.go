package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SemTiOne/personal-finance-tracker/internal/cli"
	"github.com/SemTiOne/personal-finance-tracker/internal/importer"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Long: `Record a single income or expense transaction.

Amounts are signed: negative for expenses, positive for income.
If no category is given, one is suggested by keyword matching.`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("date", "d", "", "transaction date (default: today; accepts 2006-01-02 and common variants)")
	cmd.Flags().StringP("description", "m", "", "transaction description (required)")
	cmd.Flags().StringP("amount", "a", "", "signed amount, negative for expenses (required)")
	cmd.Flags().StringP("category", "c", "", "category name (default: auto-categorized)")

	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dateStr, _ := cmd.Flags().GetString("date")
	description, _ := cmd.Flags().GetString("description")
	amountStr, _ := cmd.Flags().GetString("amount")
	category, _ := cmd.Flags().GetString("category")

	var (
		date time.Time
		err  error
	)
	if dateStr == "" {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		date, err = importer.ParseDate(dateStr)
		if err != nil {
			return err
		}
	}

	amount, err := importer.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if category == "" {
		category = newCategorizer().Categorize(description, amount)
		fmt.Println(cli.FormatInfo(fmt.Sprintf("Suggested category: %s", category)))
	} else {
		// An explicit category must not contradict the amount's sign.
		cat, catErr := store.GetCategoryByName(ctx, category)
		if catErr == nil && !cat.Compatible(model.TypeForAmount(amount)) {
			return fmt.Errorf("category %q is %s-typed but amount %s implies %s",
				category, cat.Type, amount, model.TypeForAmount(amount))
		}
	}

	txn := model.NewTransaction(date, description, amount, category)
	id, err := store.InsertTransaction(ctx, txn)
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	sign := "+"
	if amount.IsNegative() {
		sign = ""
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added transaction %d: %s %s$%s (%s)",
		id, description, sign, amount.StringFixed(2), category)))
	return nil
}
