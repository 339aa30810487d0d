// Package testutil provides shared test fixtures for the tracker.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
	"github.com/SemTiOne/personal-finance-tracker/internal/storage"
)

// TestDB wraps an in-memory migrated store for tests.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database with migrations
// applied (including the default category seed) and cleanup registered.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// MustInsert inserts a transaction or fails the test.
func (db *TestDB) MustInsert(txn model.Transaction) int64 {
	db.t.Helper()

	id, err := db.Storage.InsertTransaction(context.Background(), txn)
	if err != nil {
		db.t.Fatalf("failed to insert transaction %q: %v", txn.Description, err)
	}
	return id
}

// Txn builds a transaction draft for tests. The amount string must be a
// valid decimal; negative amounts are expenses.
func Txn(date, description, amount, category string) model.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.NewTransaction(d, description, decimal.RequireFromString(amount), category)
}
