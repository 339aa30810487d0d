package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// UpsertCategory creates a category or updates an existing one's budget
// limit. A category's type is fixed at creation; upserting with a
// different type is a reference error.
func (s *SQLiteStorage) UpsertCategory(ctx context.Context, name string, categoryType model.CategoryType, budgetLimit decimal.Decimal) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	if err := validateCategoryType(categoryType); err != nil {
		return nil, err
	}
	if budgetLimit.IsNegative() {
		return nil, common.NewValidationError("budget_limit", budgetLimit.String(), "must be non-negative")
	}

	existing, err := s.GetCategoryByName(ctx, name)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Type != categoryType {
			return nil, &common.ReferenceError{
				Category: name,
				Reason:   fmt.Sprintf("type is fixed at creation: have %s, want %s", existing.Type, categoryType),
			}
		}
		if _, err := s.db.ExecContext(ctx,
			"UPDATE categories SET budget_limit = ? WHERE name = ?",
			budgetLimit.String(), name); err != nil {
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
		existing.BudgetLimit = budgetLimit
		return existing, nil
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name, type, budget_limit) VALUES (?, ?, ?)",
		name, string(categoryType), budgetLimit.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	slog.Info("created category", "name", name, "type", categoryType, "id", id)

	return &model.Category{
		ID:          int(id),
		Name:        name,
		Type:        categoryType,
		BudgetLimit: budgetLimit,
	}, nil
}

// GetCategoryByName returns a category by its name.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var (
		cat         model.Category
		catType     string
		budgetLimit string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, type, budget_limit, created_at
		FROM categories
		WHERE name = ?`, name).Scan(&cat.ID, &cat.Name, &catType, &budgetLimit, &cat.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &common.NotFoundError{Kind: "category", Key: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	limit, err := decimal.NewFromString(budgetLimit)
	if err != nil {
		return nil, fmt.Errorf("stored budget limit %q is not a decimal: %w", budgetLimit, err)
	}

	cat.Type = model.CategoryType(catType)
	cat.BudgetLimit = limit
	return &cat, nil
}

// ListCategories returns all categories ordered by name, optionally
// filtered by type.
func (s *SQLiteStorage) ListCategories(ctx context.Context, categoryType *model.CategoryType) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, type, budget_limit, created_at
		FROM categories`
	args := make([]any, 0, 1)

	if categoryType != nil {
		if err := validateCategoryType(*categoryType); err != nil {
			return nil, err
		}
		query += " WHERE type = ?"
		args = append(args, string(*categoryType))
	}

	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var (
			cat         model.Category
			catType     string
			budgetLimit string
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &catType, &budgetLimit, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		limit, err := decimal.NewFromString(budgetLimit)
		if err != nil {
			return nil, fmt.Errorf("stored budget limit %q is not a decimal: %w", budgetLimit, err)
		}

		cat.Type = model.CategoryType(catType)
		cat.BudgetLimit = limit
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// SetBudgetLimit updates the budget limit for an existing category.
func (s *SQLiteStorage) SetBudgetLimit(ctx context.Context, name string, limit decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}
	if limit.IsNegative() {
		return common.NewValidationError("budget_limit", limit.String(), "must be non-negative")
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE categories SET budget_limit = ? WHERE name = ?",
		limit.String(), name)
	if err != nil {
		return fmt.Errorf("failed to update budget limit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &common.NotFoundError{Kind: "category", Key: name}
	}

	slog.Info("updated budget limit", "category", name, "limit", limit.String())
	return nil
}
