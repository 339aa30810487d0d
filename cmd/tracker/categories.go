package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SemTiOne/personal-finance-tracker/internal/cli"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories and budget limits",
		Long:  `List categories, create new ones, and set budget limits for expense categories.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(keywordsCmd())
	cmd.AddCommand(addKeywordCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			typeFilter, _ := cmd.Flags().GetString("type")
			var filter *model.CategoryType
			if typeFilter != "" {
				t := model.CategoryType(typeFilter)
				filter = &t
			}

			categories, err := store.ListCategories(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.FormatInfo("No categories found. Use 'tracker categories add' to create one."))
				return nil
			}

			cli.WriteCategoriesTable(os.Stdout, categories)
			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "", "filter by type (income or expense)")
	return cmd
}

func addCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			typeStr, _ := cmd.Flags().GetString("type")
			budgetStr, _ := cmd.Flags().GetString("budget")

			budget := decimal.Zero
			if budgetStr != "" {
				parsed, err := decimal.NewFromString(budgetStr)
				if err != nil {
					return fmt.Errorf("invalid budget %q: %w", budgetStr, err)
				}
				budget = parsed
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.UpsertCategory(ctx, args[0], model.CategoryType(typeStr), budget)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category %q (%s) saved", cat.Name, cat.Type)))
			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "expense", "category type (income or expense)")
	cmd.Flags().StringP("budget", "b", "", "monthly budget limit (expense categories only)")
	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-budget <name> <limit>",
		Short: "Set a category's budget limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid budget limit %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetBudgetLimit(ctx, args[0], limit); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %q set to $%s", args[0], limit.StringFixed(2))))
			return nil
		},
	}
}

func addKeywordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-keyword <category> <keyword>",
		Short: "Add a categorization keyword",
		Long: `Register a keyword that routes matching descriptions to a category.
The keyword is stored in the config file and takes effect immediately;
a new category name registers as an expense category.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			category, kw := args[0], strings.ToLower(strings.TrimSpace(args[1]))
			if kw == "" {
				return fmt.Errorf("keyword cannot be empty")
			}

			extra := viper.GetStringMapStringSlice("keywords")
			if extra == nil {
				extra = make(map[string][]string)
			}
			for _, existing := range extra[strings.ToLower(category)] {
				if existing == kw {
					fmt.Println(cli.FormatInfo(fmt.Sprintf("Keyword %q already routes to %q", kw, category)))
					return nil
				}
			}
			extra[strings.ToLower(category)] = append(extra[strings.ToLower(category)], kw)
			viper.Set("keywords", extra)

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Keyword %q now routes to %q", kw, category)))
			return nil
		},
	}
}

// writeConfig persists the current viper state, creating the default
// config file when none was loaded.
func writeConfig() error {
	if viper.ConfigFileUsed() != "" {
		return viper.WriteConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".config", "tracker")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(dir, "config.yaml"))
}

func keywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords <category>",
		Short: "Show the keywords that route descriptions to a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			index := newIndex()

			keywords := index.Keywords(args[0])
			if keywords == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No keywords configured for %q", args[0])))
				return nil
			}

			fmt.Println(cli.FormatTitle(args[0]))
			for _, kw := range keywords {
				fmt.Printf("  %s\n", kw)
			}
			return nil
		},
	}
}
