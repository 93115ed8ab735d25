package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/domain"
)

type categoryRepository struct {
	pool    *pgxpool.Pool
	created []*domain.Category
}

var _ app.CategoryRepository = (*categoryRepository)(nil)

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	r.created = append(r.created, category)
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var (
		title    string
		parentID *uuid.UUID
	)
	err := r.pool.QueryRow(ctx,
		`SELECT title, parent_id FROM categories WHERE id = $1`, id,
	).Scan(&title, &parentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load category %s: %w", id, err)
	}
	return domain.RehydrateCategory(id, title, parentID), nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, parent_id FROM categories ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var (
			id       uuid.UUID
			title    string
			parentID *uuid.UUID
		)
		if err := rows.Scan(&id, &title, &parentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, domain.RehydrateCategory(id, title, parentID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) flush(ctx context.Context, tx pgx.Tx) error {
	for _, category := range r.created {
		_, err := tx.Exec(ctx,
			`INSERT INTO categories (id, title, parent_id) VALUES ($1, $2, $3)`,
			category.ID(), category.Title(), category.ParentID(),
		)
		if err != nil {
			return fmt.Errorf("insert category %s: %w", category.ID(), err)
		}
	}
	return nil
}
