package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					date DATE NOT NULL,
					description TEXT NOT NULL,
					amount TEXT NOT NULL,
					category TEXT NOT NULL,
					type TEXT NOT NULL CHECK (type IN ('income', 'expense')),
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_category ON transactions(category)`,

				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT UNIQUE NOT NULL,
					type TEXT NOT NULL CHECK (type IN ('income', 'expense')),
					budget_limit TEXT NOT NULL DEFAULT '0',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_categories_type ON categories(type)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Seed default categories",
		Up: func(tx *sql.Tx) error {
			defaults := []struct {
				name        string
				catType     string
				budgetLimit string
			}{
				{"Food & Dining", "expense", "500"},
				{"Transportation", "expense", "200"},
				{"Shopping", "expense", "300"},
				{"Bills & Utilities", "expense", "400"},
				{"Entertainment", "expense", "150"},
				{"Healthcare", "expense", "200"},
				{"Travel", "expense", "0"},
				{"Education", "expense", "0"},
				{"Personal Care", "expense", "0"},
				{"Other Expenses", "expense", "100"},
				{"Salary", "income", "0"},
				{"Freelance", "income", "0"},
				{"Investments", "income", "0"},
				{"Other Income", "income", "0"},
			}

			stmt, err := tx.Prepare(`INSERT OR IGNORE INTO categories (name, type, budget_limit) VALUES (?, ?, ?)`)
			if err != nil {
				return fmt.Errorf("failed to prepare seed statement: %w", err)
			}
			defer func() { _ = stmt.Close() }()

			for _, cat := range defaults {
				if _, err := stmt.Exec(cat.name, cat.catType, cat.budgetLimit); err != nil {
					return fmt.Errorf("failed to seed category %q: %w", cat.name, err)
				}
			}
			return nil
		},
	},
}

// Migrate runs all pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		slog.Info("applying migration",
			"version", migration.Version,
			"description", migration.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// PRAGMA does not support parameter binding
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		currentVersion = migration.Version
	}

	if currentVersion != ExpectedSchemaVersion {
		return fmt.Errorf("schema version %d does not match expected %d", currentVersion, ExpectedSchemaVersion)
	}

	return nil
}
