package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
	"github.com/SemTiOne/personal-finance-tracker/internal/testutil"
)

func TestInsertAndGetTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	id := db.MustInsert(testutil.Txn("2026-02-01", "Grocery Store", "-125.50", "Food & Dining"))
	require.Positive(t, id)

	txn, err := db.Storage.GetTransactionByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Grocery Store", txn.Description)
	assert.Equal(t, "Food & Dining", txn.Category)
	assert.Equal(t, model.TransactionTypeExpense, txn.Type)
	assert.Equal(t, "-125.5", txn.Amount.String())
	assert.Equal(t, "2026-02-01", txn.Date.Format("2006-01-02"))
	assert.False(t, txn.CreatedAt.IsZero())
}

func TestInsertTransaction_RejectsInconsistentType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	txn := testutil.Txn("2026-02-01", "Salary", "3500.00", "Salary")
	txn.Type = model.TransactionTypeExpense

	_, err := db.Storage.InsertTransaction(ctx, txn)
	require.Error(t, err)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := db.Storage.GetTransactionByID(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetTransactions_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	db.MustInsert(testutil.Txn("2026-01-15", "January Groceries", "-50.00", "Food & Dining"))
	db.MustInsert(testutil.Txn("2026-02-01", "Grocery Store", "-125.50", "Food & Dining"))
	db.MustInsert(testutil.Txn("2026-02-10", "Gas Station", "-45.00", "Transportation"))
	db.MustInsert(testutil.Txn("2026-03-05", "March Groceries", "-70.00", "Food & Dining"))

	febStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	febEnd := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	t.Run("date range", func(t *testing.T) {
		txns, err := db.Storage.GetTransactions(ctx, service.TransactionFilter{
			StartDate: &febStart,
			EndDate:   &febEnd,
		})
		require.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("category", func(t *testing.T) {
		txns, err := db.Storage.GetTransactions(ctx, service.TransactionFilter{
			Category: "Food & Dining",
		})
		require.NoError(t, err)
		assert.Len(t, txns, 3)
	})

	t.Run("date range and category", func(t *testing.T) {
		txns, err := db.Storage.GetTransactions(ctx, service.TransactionFilter{
			StartDate: &febStart,
			EndDate:   &febEnd,
			Category:  "Food & Dining",
		})
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "Grocery Store", txns[0].Description)
	})

	t.Run("limit", func(t *testing.T) {
		txns, err := db.Storage.GetTransactions(ctx, service.TransactionFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("most recent first", func(t *testing.T) {
		txns, err := db.Storage.GetTransactions(ctx, service.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, txns, 4)
		assert.Equal(t, "March Groceries", txns[0].Description)
		assert.Equal(t, "January Groceries", txns[3].Description)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := db.Storage.GetTransactions(ctx, service.TransactionFilter{
			StartDate: &febEnd,
			EndDate:   &febStart,
		})
		require.Error(t, err)
	})
}

func TestUpdateTransactionCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	id := db.MustInsert(testutil.Txn("2026-02-01", "Online Order", "-40.00", model.CategoryUncategorized))

	t.Run("valid update", func(t *testing.T) {
		err := db.Storage.UpdateTransactionCategory(ctx, id, "Shopping")
		require.NoError(t, err)

		txn, err := db.Storage.GetTransactionByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Shopping", txn.Category)
	})

	t.Run("ad-hoc category allowed", func(t *testing.T) {
		err := db.Storage.UpdateTransactionCategory(ctx, id, "Gifts")
		require.NoError(t, err)
	})

	t.Run("type conflict rejected", func(t *testing.T) {
		err := db.Storage.UpdateTransactionCategory(ctx, id, "Salary")
		require.Error(t, err)

		var refErr *common.ReferenceError
		assert.ErrorAs(t, err, &refErr)
	})

	t.Run("missing transaction", func(t *testing.T) {
		err := db.Storage.UpdateTransactionCategory(ctx, 9999, "Shopping")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	id := db.MustInsert(testutil.Txn("2026-02-01", "Grocery Store", "-125.50", "Food & Dining"))

	require.NoError(t, db.Storage.DeleteTransaction(ctx, id))

	_, err := db.Storage.GetTransactionByID(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = db.Storage.DeleteTransaction(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpsertCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	t.Run("create new", func(t *testing.T) {
		cat, err := db.Storage.UpsertCategory(ctx, "Pets", model.CategoryTypeExpense, decimal.NewFromInt(75))
		require.NoError(t, err)
		assert.Equal(t, "Pets", cat.Name)
		assert.Equal(t, model.CategoryTypeExpense, cat.Type)
		assert.Equal(t, "75", cat.BudgetLimit.String())
	})

	t.Run("update budget on existing", func(t *testing.T) {
		cat, err := db.Storage.UpsertCategory(ctx, "Pets", model.CategoryTypeExpense, decimal.NewFromInt(120))
		require.NoError(t, err)
		assert.Equal(t, "120", cat.BudgetLimit.String())
	})

	t.Run("type is fixed at creation", func(t *testing.T) {
		_, err := db.Storage.UpsertCategory(ctx, "Pets", model.CategoryTypeIncome, decimal.Zero)
		require.Error(t, err)

		var refErr *common.ReferenceError
		assert.ErrorAs(t, err, &refErr)
	})
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	all, err := db.Storage.ListCategories(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, all, "migrations seed default categories")

	incomeType := model.CategoryTypeIncome
	income, err := db.Storage.ListCategories(ctx, &incomeType)
	require.NoError(t, err)
	require.NotEmpty(t, income)
	for _, cat := range income {
		assert.Equal(t, model.CategoryTypeIncome, cat.Type)
	}
	assert.Less(t, len(income), len(all))
}

func TestSetBudgetLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.SetBudgetLimit(ctx, "Food & Dining", decimal.NewFromInt(650)))

	cat, err := db.Storage.GetCategoryByName(ctx, "Food & Dining")
	require.NoError(t, err)
	assert.Equal(t, "650", cat.BudgetLimit.String())

	t.Run("negative limit rejected", func(t *testing.T) {
		err := db.Storage.SetBudgetLimit(ctx, "Food & Dining", decimal.NewFromInt(-10))
		require.Error(t, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		err := db.Storage.SetBudgetLimit(ctx, "Nope", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.Migrate(ctx))
	require.NoError(t, db.Storage.Migrate(ctx))

	all, err := db.Storage.ListCategories(ctx, nil)
	require.NoError(t, err)

	seen := make(map[string]bool, len(all))
	for _, cat := range all {
		assert.False(t, seen[cat.Name], "category %q seeded twice", cat.Name)
		seen[cat.Name] = true
	}
}
