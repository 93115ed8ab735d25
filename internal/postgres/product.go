package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/domain"
)

type productRepository struct {
	pool    *pgxpool.Pool
	created []*domain.Product
	tracked []*domain.Product
	deleted []*domain.Product
}

var _ app.ProductRepository = (*productRepository)(nil)

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	r.created = append(r.created, product)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.load(ctx, id)
}

func (r *productRepository) GetByIDTracked(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := r.load(ctx, id)
	if err != nil || product == nil {
		return product, err
	}
	r.tracked = append(r.tracked, product)
	return product, nil
}

func (r *productRepository) load(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var (
		title       string
		description string
		price       decimal.Decimal
		quantity    int
		state       string
		userID      uuid.UUID
		categoryID  *uuid.UUID
	)
	err := r.pool.QueryRow(ctx,
		`SELECT title, description, price, quantity, state, user_id, category_id
		 FROM products WHERE id = $1`, id,
	).Scan(&title, &description, &price, &quantity, &state, &userID, &categoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", id, err)
	}

	images, err := r.loadImages(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return domain.RehydrateProduct(id, title, description, price, quantity,
		domain.ProductState(state), userID, categoryID, images[id]), nil
}

func (r *productRepository) List(ctx context.Context, filter app.ProductFilter) ([]*domain.Product, error) {
	var (
		conds []string
		args  []any
	)
	conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)+1))
	args = append(args, "%"+filter.Title+"%")
	if filter.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)+1))
		args = append(args, *filter.CategoryID)
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, perPage, (page-1)*perPage)

	query := fmt.Sprintf(
		`SELECT id, title, description, price, quantity, state, user_id, category_id
		 FROM products
		 WHERE %s
		 ORDER BY created_at DESC, id
		 LIMIT $%d OFFSET $%d`,
		strings.Join(conds, " AND "), len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	type row struct {
		id          uuid.UUID
		title       string
		description string
		price       decimal.Decimal
		quantity    int
		state       string
		userID      uuid.UUID
		categoryID  *uuid.UUID
	}
	var (
		scanned []row
		ids     []uuid.UUID
	)
	for rows.Next() {
		var rec row
		if err := rows.Scan(&rec.id, &rec.title, &rec.description, &rec.price,
			&rec.quantity, &rec.state, &rec.userID, &rec.categoryID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		scanned = append(scanned, rec)
		ids = append(ids, rec.id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	images, err := r.loadImages(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(scanned))
	for _, rec := range scanned {
		products = append(products, domain.RehydrateProduct(rec.id, rec.title,
			rec.description, rec.price, rec.quantity, domain.ProductState(rec.state),
			rec.userID, rec.categoryID, images[rec.id]))
	}
	return products, nil
}

func (r *productRepository) Delete(ctx context.Context, product *domain.Product) error {
	// A product staged for deletion must not also be flushed as an update.
	for i, tracked := range r.tracked {
		if tracked == product {
			r.tracked = append(r.tracked[:i], r.tracked[i+1:]...)
			break
		}
	}
	r.deleted = append(r.deleted, product)
	return nil
}

func (r *productRepository) loadImages(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]domain.ProductImage, error) {
	images := make(map[uuid.UUID][]domain.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return images, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, file_name, file_type
		 FROM product_images
		 WHERE product_id = ANY($1)
		 ORDER BY created_at, file_name`,
		productIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("load product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			img       domain.ProductImage
		)
		if err := rows.Scan(&productID, &img.FileName, &img.FileType); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		images[productID] = append(images[productID], img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product images: %w", err)
	}
	return images, nil
}

func (r *productRepository) flush(ctx context.Context, tx pgx.Tx) error {
	for _, product := range r.created {
		_, err := tx.Exec(ctx,
			`INSERT INTO products (id, title, description, price, quantity, state, user_id, category_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			product.ID(), product.Title(), product.Description(), product.Price(),
			product.Quantity(), string(product.State()), product.UserID(), product.CategoryID(),
		)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", product.ID(), err)
		}
		if err := insertProductImages(ctx, tx, product); err != nil {
			return err
		}
	}

	for _, product := range r.tracked {
		_, err := tx.Exec(ctx,
			`UPDATE products
			 SET title = $2, description = $3, price = $4, quantity = $5,
			     state = $6, category_id = $7, updated_at = now()
			 WHERE id = $1`,
			product.ID(), product.Title(), product.Description(), product.Price(),
			product.Quantity(), string(product.State()), product.CategoryID(),
		)
		if err != nil {
			return fmt.Errorf("update product %s: %w", product.ID(), err)
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM product_images WHERE product_id = $1`, product.ID(),
		); err != nil {
			return fmt.Errorf("clear images for product %s: %w", product.ID(), err)
		}
		if err := insertProductImages(ctx, tx, product); err != nil {
			return err
		}
	}

	for _, product := range r.deleted {
		if _, err := tx.Exec(ctx,
			`DELETE FROM products WHERE id = $1`, product.ID(),
		); err != nil {
			return fmt.Errorf("delete product %s: %w", product.ID(), err)
		}
	}
	return nil
}

func insertProductImages(ctx context.Context, tx pgx.Tx, product *domain.Product) error {
	for _, img := range product.Images() {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_images (product_id, file_name, file_type)
			 VALUES ($1, $2, $3)`,
			product.ID(), img.FileName, img.FileType,
		)
		if err != nil {
			return fmt.Errorf("insert image %s for product %s: %w", img.FileName, product.ID(), err)
		}
	}
	return nil
}
