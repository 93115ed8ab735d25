package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/domain"
)

// cartRepository loads cart aggregates and stages them for the unit of work.
// Loaded carts are tracked; flush rewrites their line items and bumps the
// version with an optimistic check.
type cartRepository struct {
	pool    *pgxpool.Pool
	created []*domain.Cart
	tracked []trackedCart
}

type trackedCart struct {
	cart          *domain.Cart
	loadedVersion int64
}

var _ app.CartRepository = (*cartRepository)(nil)

func (r *cartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	var (
		cartID  uuid.UUID
		version int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, version FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&cartID, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart for user %s: %w", userID, err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, product_id, quantity, unit_price
		 FROM cart_items
		 WHERE cart_id = $1
		 ORDER BY created_at, id`,
		cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("load cart items for cart %s: %w", cartID, err)
	}
	defer rows.Close()

	var items []*domain.CartItem
	for rows.Next() {
		var (
			itemID    uuid.UUID
			productID uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
		)
		if err := rows.Scan(&itemID, &productID, &quantity, &unitPrice); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, domain.RehydrateCartItem(itemID, productID, quantity, unitPrice))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}

	cart := domain.RehydrateCart(cartID, userID, version, items)
	r.tracked = append(r.tracked, trackedCart{cart: cart, loadedVersion: version})
	return cart, nil
}

func (r *cartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	r.created = append(r.created, cart)
	return nil
}

func (r *cartRepository) flush(ctx context.Context, tx pgx.Tx) error {
	for _, cart := range r.created {
		_, err := tx.Exec(ctx,
			`INSERT INTO carts (id, user_id, version) VALUES ($1, $2, $3)`,
			cart.ID(), cart.UserID(), cart.Version(),
		)
		if err != nil {
			return fmt.Errorf("insert cart %s: %w", cart.ID(), err)
		}
		if err := insertCartItems(ctx, tx, cart); err != nil {
			return err
		}
	}

	for _, t := range r.tracked {
		tag, err := tx.Exec(ctx,
			`UPDATE carts SET version = version + 1, updated_at = now()
			 WHERE id = $1 AND version = $2`,
			t.cart.ID(), t.loadedVersion,
		)
		if err != nil {
			return fmt.Errorf("update cart %s: %w", t.cart.ID(), err)
		}
		if tag.RowsAffected() == 0 {
			return app.ErrConflict
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1`, t.cart.ID(),
		); err != nil {
			return fmt.Errorf("clear cart items for cart %s: %w", t.cart.ID(), err)
		}
		if err := insertCartItems(ctx, tx, t.cart); err != nil {
			return err
		}
	}
	return nil
}

func insertCartItems(ctx context.Context, tx pgx.Tx, cart *domain.Cart) error {
	for _, item := range cart.Items() {
		_, err := tx.Exec(ctx,
			`INSERT INTO cart_items (id, cart_id, product_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID(), cart.ID(), item.ProductID(), item.Quantity(), item.UnitPrice(),
		)
		if err != nil {
			return fmt.Errorf("insert cart item %s: %w", item.ID(), err)
		}
	}
	return nil
}
