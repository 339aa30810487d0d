package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/report"
)

// WriteTransactionsTable renders transactions as a text table.
func WriteTransactionsTable(w io.Writer, transactions []model.Transaction) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Description", "Amount", "Category", "Type"})
	table.SetBorder(false)

	for _, txn := range transactions {
		table.Append([]string{
			fmt.Sprintf("%d", txn.ID),
			txn.Date.Format("2006-01-02"),
			txn.Description,
			"$" + txn.Amount.StringFixed(2),
			txn.Category,
			string(txn.Type),
		})
	}

	table.Render()
}

// WriteCategoriesTable renders categories with their budget limits.
func WriteCategoriesTable(w io.Writer, categories []model.Category) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Type", "Budget Limit"})
	table.SetBorder(false)

	for _, cat := range categories {
		limit := "-"
		if cat.HasBudget() {
			limit = "$" + cat.BudgetLimit.StringFixed(2)
		}
		table.Append([]string{cat.Name, string(cat.Type), limit})
	}

	table.Render()
}

// WriteBudgetTable renders budget comparisons with a styled status column.
func WriteBudgetTable(w io.Writer, comparisons []report.BudgetComparison) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Budget", "Actual", "Delta", "Used", "Status"})
	table.SetBorder(false)

	for _, c := range comparisons {
		table.Append([]string{
			c.Category,
			"$" + c.Limit.StringFixed(2),
			"$" + c.Actual.StringFixed(2),
			"$" + c.Delta.StringFixed(2),
			c.Percent.StringFixed(1) + "%",
			formatBudgetStatus(c.Status),
		})
	}

	table.Render()
}

// WriteTrendTable renders a monthly trend series.
func WriteTrendTable(w io.Writer, points []report.TrendPoint) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Month", "Income", "Expenses", "Balance"})
	table.SetBorder(false)

	for _, p := range points {
		table.Append([]string{
			p.Month.String(),
			"$" + p.Income.StringFixed(2),
			"$" + p.Expense.StringFixed(2),
			"$" + p.Balance.StringFixed(2),
		})
	}

	table.Render()
}

func formatBudgetStatus(status report.BudgetStatus) string {
	switch status {
	case report.BudgetStatusOver:
		return ErrorStyle.Render("OVER")
	case report.BudgetStatusWarning:
		return WarningStyle.Render("WARNING")
	default:
		return SuccessStyle.Render("under")
	}
}
