package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
)

// =========================================================================
// Public methods
// =========================================================================

func (s *Storage) SaveCategory(name string) (domain.CategoryId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id domain.CategoryId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveCategory(tx, name)
		return err
	})
	return id, err
}

func (s *Storage) Category(id domain.CategoryId) (domain.Category, error) {
	return s.category(s.db, id)
}

func (s *Storage) Categories() ([]domain.Category, error) {
	return s.categories(s.db)
}

func (s *Storage) UpdateCategory(id domain.CategoryId, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateCategory(tx, id, name)
	})
}

func (s *Storage) DeleteCategory(id domain.CategoryId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteCategory(tx, id)
	})
}

// =========================================================================
// Internal methods
// =========================================================================

func (s *Storage) saveCategory(q Querier, name string) (domain.CategoryId, error) {
	var id domain.CategoryId
	err := q.QueryRow("INSERT INTO categories(name) VALUES($1) RETURNING id", name).Scan(&id)
	if err != nil {
		if mapped := mapPqError(err, "Category already exists"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}
	return id, nil
}

func (s *Storage) category(q Querier, id domain.CategoryId) (domain.Category, error) {
	var c domain.Category
	err := q.QueryRow("SELECT id, name FROM categories WHERE id = $1", id).Scan(&c.Id, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, internal_errors.NotFound("Category not found")
		}
		return domain.Category{}, fmt.Errorf("failed to query category: %w", err)
	}
	return c, nil
}

func (s *Storage) categories(q Querier) ([]domain.Category, error) {
	rows, err := q.Query("SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Id, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Storage) updateCategory(q Querier, id domain.CategoryId, name string) error {
	result, err := q.Exec("UPDATE categories SET name = $1 WHERE id = $2", name, id)
	if err != nil {
		if mapped := mapPqError(err, "Category already exists"); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return requireRowsAffected(result, "Category not found")
}

func (s *Storage) deleteCategory(q Querier, id domain.CategoryId) error {
	result, err := q.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		// Posts still referencing the category block the delete
		if mapped := mapPqError(err, "Category in use"); mapped != err {
			return internal_errors.BadRequest("Category cannot be deleted")
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return requireRowsAffected(result, "Category not found")
}
