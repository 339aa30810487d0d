package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SemTiOne/personal-finance-tracker/internal/chart"
	"github.com/SemTiOne/personal-finance-tracker/internal/cli"
	"github.com/SemTiOne/personal-finance-tracker/internal/report"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate financial reports",
		Long:  `Summaries, budget comparisons and monthly trends, as tables or charts.`,
	}

	cmd.AddCommand(summaryReportCmd())
	cmd.AddCommand(budgetReportCmd())
	cmd.AddCommand(trendReportCmd())

	return cmd
}

func summaryReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Income/expense summary with category breakdown",
		RunE:  runSummaryReport,
	}

	cmd.Flags().StringP("start", "s", "", "start date (default: first of current month)")
	cmd.Flags().StringP("end", "e", "", "end date (default: last of current month)")
	cmd.Flags().Bool("chart", false, "also render a category pie chart")

	return cmd
}

func runSummaryReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	withChart, _ := cmd.Flags().GetBool("chart")

	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	aggregator := report.NewAggregator(store)
	summary, err := aggregator.PeriodSummary(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to compute summary: %w", err)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Summary %s to %s",
		start.Format("2006-01-02"), end.Format("2006-01-02"))))
	fmt.Printf("  Total income:   $%s\n", summary.TotalIncome.StringFixed(2))
	fmt.Printf("  Total expenses: $%s\n", summary.TotalExpense.StringFixed(2))
	fmt.Printf("  Balance:        $%s\n\n", summary.Balance.StringFixed(2))

	if len(summary.Categories) == 0 {
		fmt.Println(cli.FormatInfo("No expenses in this period."))
		return nil
	}

	fmt.Println(cli.BoldStyle.Render("Spending by category:"))
	for _, c := range summary.Categories {
		fmt.Printf("  %-25s $%10s  (%s%%)\n", c.Category, c.Total.StringFixed(2), c.Percent.StringFixed(1))
	}

	if withChart {
		values := make([]service.LabeledValue, 0, len(summary.Categories))
		for _, c := range summary.Categories {
			values = append(values, service.LabeledValue{Label: c.Category, Value: c.Total})
		}

		renderer := chart.NewPNGRenderer(reportsDir())
		path, err := renderer.RenderPie(
			fmt.Sprintf("Spending by category %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
			values)
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Chart saved to %s", cli.ChartIcon, path)))
	}

	return nil
}

func budgetReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget vs actual spending per category",
		RunE:  runBudgetReport,
	}

	cmd.Flags().StringP("month", "m", "", "month to report on, YYYY-MM (default: current month)")
	cmd.Flags().Bool("chart", false, "also render a budget comparison bar chart")

	return cmd
}

func runBudgetReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	monthStr, _ := cmd.Flags().GetString("month")
	withChart, _ := cmd.Flags().GetBool("chart")

	month := report.MonthOf(time.Now())
	if monthStr != "" {
		parsed, err := report.ParseMonth(monthStr)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM): %w", monthStr, err)
		}
		month = parsed
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	aggregator := report.NewAggregator(store)
	comparisons, err := aggregator.BudgetComparisons(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to compute budget comparison: %w", err)
	}

	if len(comparisons) == 0 {
		fmt.Println(cli.FormatInfo("No expense categories with budget limits. Use 'tracker categories set-budget'."))
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Budget report for %s", month)))
	cli.WriteBudgetTable(os.Stdout, comparisons)

	for _, c := range comparisons {
		switch c.Status {
		case report.BudgetStatusOver:
			fmt.Println(cli.FormatError(fmt.Sprintf("%s exceeded its budget by $%s",
				c.Category, c.Delta.StringFixed(2))))
		case report.BudgetStatusWarning:
			fmt.Println(cli.FormatWarning(fmt.Sprintf("%s is at %s%% of its budget",
				c.Category, c.Percent.StringFixed(1))))
		}
	}

	if withChart {
		budget := make([]service.LabeledValue, 0, len(comparisons))
		actual := make([]service.LabeledValue, 0, len(comparisons))
		for _, c := range comparisons {
			budget = append(budget, service.LabeledValue{Label: c.Category, Value: c.Limit})
			actual = append(actual, service.LabeledValue{Label: c.Category, Value: c.Actual})
		}

		renderer := chart.NewPNGRenderer(reportsDir())
		path, err := renderer.RenderBudgetBars(fmt.Sprintf("Budget vs actual %s", month), budget, actual)
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Chart saved to %s", cli.ChartIcon, path)))
	}

	return nil
}

func trendReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Monthly income/expense/balance trend",
		RunE:  runTrendReport,
	}

	cmd.Flags().IntP("months", "n", report.DefaultTrendMonths, "number of months")
	cmd.Flags().Bool("chart", false, "also render a trend line chart")

	return cmd
}

func runTrendReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	months, _ := cmd.Flags().GetInt("months")
	withChart, _ := cmd.Flags().GetBool("chart")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	aggregator := report.NewAggregator(store)
	points, err := aggregator.MonthlyTrend(ctx, time.Now(), months)
	if err != nil {
		return fmt.Errorf("failed to compute trend: %w", err)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Trend over the last %d months", len(points))))
	cli.WriteTrendTable(os.Stdout, points)

	if withChart {
		series := make([]service.TrendPoint, 0, len(points))
		for _, p := range points {
			series = append(series, service.TrendPoint{
				Period:  p.Month.String(),
				Income:  p.Income,
				Expense: p.Expense,
				Balance: p.Balance,
			})
		}

		renderer := chart.NewPNGRenderer(reportsDir())
		path, err := renderer.RenderTrend(fmt.Sprintf("Trend last %d months", len(points)), series)
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Chart saved to %s", cli.ChartIcon, path)))
	}

	return nil
}
