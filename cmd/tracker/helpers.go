package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/config"
	"github.com/SemTiOne/personal-finance-tracker/internal/keyword"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
	"github.com/SemTiOne/personal-finance-tracker/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/tracker/finance.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to open database at %s", dbPath), err)
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newIndex builds the keyword index from the defaults plus any keywords
// configured under the "keywords" config key.
func newIndex() *keyword.Index {
	return config.LoadKeywordIndex()
}

func newCategorizer() *keyword.Categorizer {
	return keyword.NewCategorizer(newIndex())
}

// reportsDir returns the configured chart/export output directory.
func reportsDir() string {
	dir := viper.GetString("reports.dir")
	if dir == "" {
		dir = "reports"
	}
	return config.ExpandPath(dir)
}

// parseDateRange resolves optional --start/--end flags. Missing values
// default to the current calendar month.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q (expected 2006-01-02): %w", startStr, err)
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q (expected 2006-01-02): %w", endStr, err)
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	return start, end, nil
}
