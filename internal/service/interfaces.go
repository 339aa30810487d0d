// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
// Nil date bounds are open-ended; an empty category matches all.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
}

// Storage defines the contract for the persistence layer. Each call is
// synchronous and atomic; no two mutating calls interleave their effects.
type Storage interface {
	// Transaction operations
	InsertTransaction(ctx context.Context, txn model.Transaction) (int64, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, id int64, category string) error
	DeleteTransaction(ctx context.Context, id int64) error

	// Category operations
	UpsertCategory(ctx context.Context, name string, categoryType model.CategoryType, budgetLimit decimal.Decimal) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context, categoryType *model.CategoryType) ([]model.Category, error)
	SetBudgetLimit(ctx context.Context, name string, limit decimal.Decimal) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ChartKind tags the kind of chart a series should be rendered as.
type ChartKind string

const (
	// ChartKindPie renders a labeled series as a pie chart.
	ChartKindPie ChartKind = "pie"
	// ChartKindLine renders a trend series as a line chart.
	ChartKindLine ChartKind = "line"
	// ChartKindBar renders paired series as grouped bars.
	ChartKindBar ChartKind = "bar"
)

// LabeledValue is a single (label, value) point in a series.
type LabeledValue struct {
	Label string
	Value decimal.Decimal
}

// TrendPoint is one period of an income/expense/balance trend series.
type TrendPoint struct {
	Period  string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// ChartRenderer is the sink that turns pre-aggregated series into chart
// artifacts. Implementations return an opaque artifact reference such as
// a file path; callers never inspect rendering output.
type ChartRenderer interface {
	RenderPie(title string, values []LabeledValue) (string, error)
	RenderTrend(title string, points []TrendPoint) (string, error)
	RenderBudgetBars(title string, budget, actual []LabeledValue) (string, error)
}
