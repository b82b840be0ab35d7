package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"apparel-be/internal/db"
	"apparel-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, input UpdateProductInput) (*Product, error)

	// Reserve decrements available quantity on the caller's transaction handle
	// and returns the live unit price. It never commits on its own.
	Reserve(ctx context.Context, q db.DBTX, productID uint, quantity int) (decimal.Decimal, error)

	// Release returns previously reserved quantity to stock, again on the
	// caller's transaction handle.
	Release(ctx context.Context, q db.DBTX, productID uint, quantity int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

const productColumns = `
	id, name, description, price, quantity,
	category_id, seller_id, image_url, created_at, updated_at
`

func scanProduct(row *sql.Row) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.CategoryID, &p.SellerID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.Uint("product_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return p, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(name) = LOWER($1) LIMIT 1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	// ---------- pagination ----------
	finalLimit := int32(20)
	if opts.Limit != nil && *opts.Limit > 0 {
		finalLimit = *opts.Limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if opts.Page != nil && *opts.Page > 0 {
		finalPage = *opts.Page
	}

	offset := (finalPage - 1) * finalLimit

	// ---------- where ----------
	where := []string{"1=1"}
	args := []any{}

	if opts.CategoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)+1))
		args = append(args, *opts.CategoryID)
	}
	if opts.SellerID != nil {
		where = append(where, fmt.Sprintf("seller_id = $%d", len(args)+1))
		args = append(args, *opts.SellerID)
	}
	if opts.Search != nil && *opts.Search != "" {
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*opts.Search+"%")
	}

	query := `SELECT ` + productColumns + `
	FROM products
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY created_at DESC
	LIMIT $` + fmt.Sprint(len(args)+1) + `
	OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.CategoryID, &p.SellerID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("name", p.Name),
	)

	query := `
		INSERT INTO products (
			name, description, price, quantity,
			category_id, seller_id, image_url
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, p.Quantity,
		p.CategoryID, p.SellerID, p.ImageURL,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return nil
}

func (r *repository) Update(ctx context.Context, input UpdateProductInput) (*Product, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{}

	if input.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *input.Description)
	}
	if input.Price != nil {
		set = append(set, fmt.Sprintf("price = $%d", len(args)+1))
		args = append(args, *input.Price)
	}
	if input.Quantity != nil {
		set = append(set, fmt.Sprintf("quantity = $%d", len(args)+1))
		args = append(args, *input.Quantity)
	}
	if input.ImageURL != nil {
		set = append(set, fmt.Sprintf("image_url = $%d", len(args)+1))
		args = append(args, *input.ImageURL)
	}

	query := `UPDATE products SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)+1) + productColumns
	args = append(args, input.ProductID)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Reserve(
	ctx context.Context,
	q db.DBTX,
	productID uint,
	quantity int,
) (decimal.Decimal, error) {

	// Conditional decrement: the predicate plus the row lock taken by UPDATE
	// make it impossible for concurrent reservations to drive quantity
	// negative, regardless of isolation level.
	query := `
		UPDATE products
		SET quantity = quantity - $1, updated_at = NOW()
		WHERE id = $2 AND quantity >= $1
		RETURNING price
	`

	var price decimal.Decimal
	err := q.QueryRowContext(ctx, query, quantity, productID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		// Either the product is gone or the stock ran out; tell them apart.
		var exists bool
		if err := q.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID,
		).Scan(&exists); err != nil {
			return decimal.Zero, err
		}
		if !exists {
			return decimal.Zero, ErrProductNotFound
		}
		return decimal.Zero, ErrInsufficientStock
	}
	if err != nil {
		return decimal.Zero, err
	}

	return price, nil
}

func (r *repository) Release(
	ctx context.Context,
	q db.DBTX,
	productID uint,
	quantity int,
) error {

	res, err := q.ExecContext(ctx, `
		UPDATE products
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2
	`, quantity, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
