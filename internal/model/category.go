package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryType indicates whether a category holds income or expense
// transactions. It is fixed at creation; a category cannot hold both.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// CategoryUncategorized is the sentinel category assigned when no keyword
// matches a transaction description, or when a match contradicts the
// amount's sign. The store does not require it to exist as a row.
const CategoryUncategorized = "Uncategorized"

// Category is a named bucket for transactions. BudgetLimit applies only to
// expense categories; zero means no limit is set.
type Category struct {
	CreatedAt   time.Time
	Name        string
	Type        CategoryType
	BudgetLimit decimal.Decimal
	ID          int
}

// HasBudget reports whether the category participates in budget comparison.
func (c *Category) HasBudget() bool {
	return c.Type == CategoryTypeExpense && c.BudgetLimit.IsPositive()
}

// Compatible reports whether a transaction of the given type may be
// assigned to this category.
func (c *Category) Compatible(t TransactionType) bool {
	return string(c.Type) == string(t)
}
