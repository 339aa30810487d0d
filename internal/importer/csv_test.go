package importer_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemTiOne/personal-finance-tracker/internal/importer"
	"github.com/SemTiOne/personal-finance-tracker/internal/keyword"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
	"github.com/SemTiOne/personal-finance-tracker/internal/testutil"
)

func newImporter(t *testing.T) (*importer.CSVImporter, *testutil.TestDB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	categorizer := keyword.NewCategorizer(keyword.DefaultIndex())
	return importer.NewCSVImporter(db.Storage, categorizer), db
}

func TestCSVImporter_HeaderFileWithAutoCategorization(t *testing.T) {
	imp, db := newImporter(t)

	input := strings.Join([]string{
		"Date,Description,Amount,Category",
		"2026-02-01,Grocery Store,-125.50,",
		"2026-02-02,Salary - ABC Corp,3500.00,",
		"2026-02-03,Mystery Purchase,-10.00,",
	}, "\n")

	result, err := imp.Import(context.Background(), strings.NewReader(input), importer.Options{HasHeader: true})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Empty(t, result.Skipped)

	txns, err := db.Storage.GetTransactions(context.Background(), service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txns, 3)

	byDescription := make(map[string]model.Transaction, len(txns))
	for _, txn := range txns {
		byDescription[txn.Description] = txn
	}

	grocery := byDescription["Grocery Store"]
	assert.Equal(t, "Food & Dining", grocery.Category)
	assert.Equal(t, model.TransactionTypeExpense, grocery.Type)
	assert.Equal(t, "-125.5", grocery.Amount.String())

	salary := byDescription["Salary - ABC Corp"]
	assert.Equal(t, "Salary", salary.Category)
	assert.Equal(t, model.TransactionTypeIncome, salary.Type)

	mystery := byDescription["Mystery Purchase"]
	assert.Equal(t, model.CategoryUncategorized, mystery.Category)
}

func TestCSVImporter_MalformedRowDoesNotAbortBatch(t *testing.T) {
	imp, _ := newImporter(t)

	input := strings.Join([]string{
		"2026-02-01,Grocery Store,-125.50",
		"not-a-date,Broken Row,10",
		"2026-02-03,Gas Station,-45.00",
	}, "\n")

	result, err := imp.Import(context.Background(), strings.NewReader(input), importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].Line)
	assert.Contains(t, result.Skipped[0].Reason, "date")
}

func TestCSVImporter_SkipReasons(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		reason string
	}{
		{name: "bad date", row: "99/99/9999,Shop,-5.00", reason: "date"},
		{name: "empty description", row: "2026-02-01,  ,-5.00", reason: "description"},
		{name: "bad amount", row: "2026-02-01,Shop,abc", reason: "amount"},
		{name: "incompatible explicit category", row: "2026-02-01,Shop,5.00,Food & Dining", reason: "expense category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp, _ := newImporter(t)

			result, err := imp.Import(context.Background(), strings.NewReader(tt.row), importer.Options{})
			require.NoError(t, err)
			assert.Zero(t, result.Imported)
			require.Len(t, result.Skipped, 1)
			assert.Contains(t, result.Skipped[0].Reason, tt.reason)
		})
	}
}

func TestCSVImporter_ExplicitCategoryWins(t *testing.T) {
	imp, db := newImporter(t)

	// "Grocery Store" would auto-categorize as Food & Dining, but the
	// explicit column takes precedence.
	input := "2026-02-01,Grocery Store,-125.50,Shopping"

	result, err := imp.Import(context.Background(), strings.NewReader(input), importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	txns, err := db.Storage.GetTransactions(context.Background(), service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Shopping", txns[0].Category)
}

func TestCSVImporter_UnknownExplicitCategoryAllowed(t *testing.T) {
	imp, db := newImporter(t)

	input := "2026-02-01,Pet Store,-30.00,Pets"

	result, err := imp.Import(context.Background(), strings.NewReader(input), importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	txns, err := db.Storage.GetTransactions(context.Background(), service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Pets", txns[0].Category)
}

func TestCSVImporter_CustomColumnNames(t *testing.T) {
	imp, db := newImporter(t)

	input := strings.Join([]string{
		"Posted,Memo,Value",
		"2026-02-01,Coffee Shop,-4.50",
	}, "\n")

	opts := importer.Options{
		HasHeader:         true,
		DateColumn:        "Posted",
		DescriptionColumn: "Memo",
		AmountColumn:      "Value",
	}
	result, err := imp.Import(context.Background(), strings.NewReader(input), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	txns, err := db.Storage.GetTransactions(context.Background(), service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Food & Dining", txns[0].Category)
}

func TestCSVImporter_DryRunWritesNothing(t *testing.T) {
	imp, db := newImporter(t)

	input := "2026-02-01,Grocery Store,-125.50"

	result, err := imp.Import(context.Background(), strings.NewReader(input), importer.Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	txns, err := db.Storage.GetTransactions(context.Background(), service.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestWriteSampleCSV_ImportsCleanly(t *testing.T) {
	imp, _ := newImporter(t)

	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, importer.WriteSampleCSV(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	result, err := imp.Import(context.Background(), f, importer.Options{HasHeader: true})
	require.NoError(t, err)
	assert.Equal(t, 12, result.Imported)
	assert.Empty(t, result.Skipped)
}

func TestCSVImporter_EmptyInput(t *testing.T) {
	imp, _ := newImporter(t)

	result, err := imp.Import(context.Background(), strings.NewReader(""), importer.Options{})
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Empty(t, result.Skipped)
}
