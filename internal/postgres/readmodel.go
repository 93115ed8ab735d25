package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shoplite/internal/app/cart"
	"github.com/shoplite/shoplite/internal/storage"
)

// CartReadModel projects committed cart state for the query side. Image file
// names are resolved to URLs through the file store.
type CartReadModel struct {
	pool  *pgxpool.Pool
	files storage.Storage
}

var _ cart.ReadModel = (*CartReadModel)(nil)

func NewCartReadModel(pool *pgxpool.Pool, files storage.Storage) *CartReadModel {
	return &CartReadModel{pool: pool, files: files}
}

func (m *CartReadModel) Details(ctx context.Context, userID uuid.UUID) (*cart.Details, error) {
	var cartID uuid.UUID
	err := m.pool.QueryRow(ctx,
		`SELECT id FROM carts WHERE user_id = $1`, userID,
	).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart for user %s: %w", userID, err)
	}

	rows, err := m.pool.Query(ctx,
		`SELECT ci.id, ci.product_id, ci.quantity, ci.unit_price, p.title,
		        (SELECT pi.file_name FROM product_images pi
		         WHERE pi.product_id = p.id
		         ORDER BY pi.created_at, pi.file_name LIMIT 1)
		 FROM cart_items ci
		 JOIN products p ON p.id = ci.product_id
		 WHERE ci.cart_id = $1
		 ORDER BY ci.created_at, ci.id`,
		cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("load cart details for cart %s: %w", cartID, err)
	}
	defer rows.Close()

	details := &cart.Details{CartID: cartID, Items: []cart.DetailItem{}}
	for rows.Next() {
		var (
			item      cart.DetailItem
			unitPrice decimal.Decimal
			imageName *string
		)
		if err := rows.Scan(&item.CartItemID, &item.ProductID, &item.Quantity,
			&unitPrice, &item.ProductTitle, &imageName); err != nil {
			return nil, fmt.Errorf("scan cart detail row: %w", err)
		}
		item.UnitPrice = unitPrice
		if imageName != nil {
			item.ProductImage = m.files.URL(*imageName)
		}
		details.Items = append(details.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart detail rows: %w", err)
	}
	return details, nil
}

func (m *CartReadModel) ItemCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := m.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(ci.quantity), 0)
		 FROM carts c
		 JOIN cart_items ci ON ci.cart_id = c.id
		 WHERE c.user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cart items for user %s: %w", userID, err)
	}
	return count, nil
}
