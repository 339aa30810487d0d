package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

// DefaultTrendMonths is the number of months in a trend series when the
// caller does not specify one.
const DefaultTrendMonths = 6

// budgetWarningRatio is the alert boundary: spending at or above this
// fraction of the limit classifies as warning.
var budgetWarningRatio = decimal.NewFromFloat(0.8)

// BudgetStatus classifies actual spending against a budget limit.
type BudgetStatus string

const (
	// BudgetStatusUnder means actual spending is below 80% of the limit.
	BudgetStatusUnder BudgetStatus = "under"
	// BudgetStatusWarning means spending is at or above 80% of the limit
	// but still below it.
	BudgetStatusWarning BudgetStatus = "warning"
	// BudgetStatusOver means spending is at or above the limit.
	BudgetStatusOver BudgetStatus = "over"
)

// CategoryTotal is the absolute expense total for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TrendPoint holds one month of a trend series.
type TrendPoint struct {
	Month   Month
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// BudgetComparison compares actual spending against a category's limit.
type BudgetComparison struct {
	Category string
	Status   BudgetStatus
	Limit    decimal.Decimal
	Actual   decimal.Decimal
	Delta    decimal.Decimal
	Percent  decimal.Decimal
}

// CategoryBreakdown is one category's share of a summary period.
type CategoryBreakdown struct {
	Category string
	Total    decimal.Decimal
	Percent  decimal.Decimal
}

// Summary aggregates a period's totals with a per-category breakdown.
type Summary struct {
	Start        time.Time
	End          time.Time
	Categories   []CategoryBreakdown
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Aggregator computes read-only derived views over the transaction store.
// All results are independent of transaction insertion order.
type Aggregator struct {
	store service.Storage
}

// NewAggregator creates an aggregator reading from the given store.
func NewAggregator(store service.Storage) *Aggregator {
	return &Aggregator{store: store}
}

// CategoryTotals sums expense amounts (absolute value) per category
// within the range. Categories with no matching transactions are omitted.
// Results are sorted by total descending, ties broken by name ascending.
func (a *Aggregator) CategoryTotals(ctx context.Context, start, end time.Time) ([]CategoryTotal, error) {
	transactions, err := a.store.GetTransactions(ctx, service.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.Type != model.TransactionTypeExpense {
			continue
		}
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount.Abs())
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	return totals, nil
}

// MonthlyTrend computes income, expense and net balance for each of the
// last months calendar months ending at the reference date. The series
// has exactly months entries in chronological order; months without
// transactions carry zero sums.
func (a *Aggregator) MonthlyTrend(ctx context.Context, reference time.Time, months int) ([]TrendPoint, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}

	last := MonthOf(reference)
	first := last.AddDate(0, -(months - 1))

	start := first.Start()
	end := last.End()
	transactions, err := a.store.GetTransactions(ctx, service.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, months)
	index := make(map[Month]int, months)
	for i := range points {
		month := first.AddDate(0, i)
		points[i] = TrendPoint{Month: month}
		index[month] = i
	}

	for _, txn := range transactions {
		i, ok := index[MonthOf(txn.Date)]
		if !ok {
			continue
		}
		switch txn.Type {
		case model.TransactionTypeIncome:
			points[i].Income = points[i].Income.Add(txn.Amount)
		case model.TransactionTypeExpense:
			points[i].Expense = points[i].Expense.Add(txn.Amount.Abs())
		}
	}

	for i := range points {
		points[i].Balance = points[i].Income.Sub(points[i].Expense)
	}

	return points, nil
}

// BudgetComparisons computes actual spending against the limit for every
// expense category with a nonzero budget, for the given month. Results
// are sorted by percentage of limit descending, ties broken by name.
func (a *Aggregator) BudgetComparisons(ctx context.Context, month Month) ([]BudgetComparison, error) {
	expenseType := model.CategoryTypeExpense
	categories, err := a.store.ListCategories(ctx, &expenseType)
	if err != nil {
		return nil, err
	}

	totals, err := a.CategoryTotals(ctx, month.Start(), month.End())
	if err != nil {
		return nil, err
	}

	actuals := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		actuals[t.Category] = t.Total
	}

	hundred := decimal.NewFromInt(100)
	var comparisons []BudgetComparison
	for _, cat := range categories {
		if !cat.HasBudget() {
			continue
		}
		actual := actuals[cat.Name]
		comparisons = append(comparisons, BudgetComparison{
			Category: cat.Name,
			Limit:    cat.BudgetLimit,
			Actual:   actual,
			Delta:    actual.Sub(cat.BudgetLimit),
			Status:   classifyBudget(actual, cat.BudgetLimit),
			Percent:  actual.Mul(hundred).Div(cat.BudgetLimit),
		})
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if !comparisons[i].Percent.Equal(comparisons[j].Percent) {
			return comparisons[i].Percent.GreaterThan(comparisons[j].Percent)
		}
		return comparisons[i].Category < comparisons[j].Category
	})

	return comparisons, nil
}

// classifyBudget resolves boundary values to the stricter bucket: exactly
// 80% of the limit is warning, exactly the limit is over.
func classifyBudget(actual, limit decimal.Decimal) BudgetStatus {
	switch {
	case actual.GreaterThanOrEqual(limit):
		return BudgetStatusOver
	case actual.GreaterThanOrEqual(limit.Mul(budgetWarningRatio)):
		return BudgetStatusWarning
	default:
		return BudgetStatusUnder
	}
}

// PeriodSummary computes total income, total expense, net balance and the
// per-category expense breakdown for a period. Percentages are zero when
// the period has no expenses.
func (a *Aggregator) PeriodSummary(ctx context.Context, start, end time.Time) (*Summary, error) {
	transactions, err := a.store.GetTransactions(ctx, service.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{Start: start, End: end}
	for _, txn := range transactions {
		switch txn.Type {
		case model.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case model.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount.Abs())
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	totals, err := a.CategoryTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	for _, t := range totals {
		percent := decimal.Zero
		if summary.TotalExpense.IsPositive() {
			percent = t.Total.Mul(hundred).Div(summary.TotalExpense)
		}
		summary.Categories = append(summary.Categories, CategoryBreakdown{
			Category: t.Category,
			Total:    t.Total,
			Percent:  percent,
		})
	}

	return summary, nil
}
