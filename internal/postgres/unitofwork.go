package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shoplite/shoplite/internal/app"
)

// NewUnitOfWorkFactory returns a factory producing one unit of work per
// request.
func NewUnitOfWorkFactory(pool *pgxpool.Pool) app.UnitOfWorkFactory {
	return func() app.UnitOfWork {
		return newUnitOfWork(pool)
	}
}

// unitOfWork tracks aggregates loaded or created during a single request and
// flushes them atomically on Commit.
type unitOfWork struct {
	pool       *pgxpool.Pool
	carts      *cartRepository
	products   *productRepository
	categories *categoryRepository
}

// Compile-time check that unitOfWork implements app.UnitOfWork.
var _ app.UnitOfWork = (*unitOfWork)(nil)

func newUnitOfWork(pool *pgxpool.Pool) *unitOfWork {
	return &unitOfWork{
		pool:       pool,
		carts:      &cartRepository{pool: pool},
		products:   &productRepository{pool: pool},
		categories: &categoryRepository{pool: pool},
	}
}

func (u *unitOfWork) Carts() app.CartRepository          { return u.carts }
func (u *unitOfWork) Products() app.ProductRepository    { return u.products }
func (u *unitOfWork) Categories() app.CategoryRepository { return u.categories }

// Commit flushes all staged changes in one transaction. A tracked cart whose
// stored version moved since it was loaded aborts the whole transaction with
// app.ErrConflict.
func (u *unitOfWork) Commit(ctx context.Context) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := u.categories.flush(ctx, tx); err != nil {
		return err
	}
	if err := u.products.flush(ctx, tx); err != nil {
		return err
	}
	if err := u.carts.flush(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
