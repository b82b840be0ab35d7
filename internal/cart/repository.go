package cart

import (
	"context"
	"database/sql"
	"errors"

	"apparel-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	GetByCustomer(ctx context.Context, customerID uint) (*Cart, error)
	Create(ctx context.Context, customerID uint) (*Cart, error)
	GetItem(ctx context.Context, cartID, productID uint) (*CartItem, error)
	CreateItem(ctx context.Context, item *CartItem) error
	UpdateItem(ctx context.Context, itemID uint, quantity int, price decimal.Decimal) error
	DeleteItem(ctx context.Context, itemID uint) error

	// RecalcTotal re-derives the cart total from its lines. The stored total
	// is advisory; order creation never trusts it.
	RecalcTotal(ctx context.Context, cartID uint) (decimal.Decimal, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

// GetByCustomer returns the customer's cart with its lines in insertion
// order, or (nil, nil) when the customer has no cart yet.
func (r *repository) GetByCustomer(ctx context.Context, customerID uint) (*Cart, error) {
	var c Cart

	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, status, total_price, created_at, updated_at
		FROM carts
		WHERE customer_id = $1
	`, customerID).Scan(
		&c.ID, &c.CustomerID, &c.Status, &c.TotalPrice, &c.CreatedAt, &c.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cart_id, product_id, quantity, price
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id
	`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.Price,
		); err != nil {
			return nil, err
		}
		c.Items = append(c.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, customerID uint) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("customer_id", customerID),
	)

	c := &Cart{
		CustomerID: customerID,
		Status:     CartStatusActive,
		TotalPrice: decimal.Zero,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO carts (customer_id, status, total_price)
		VALUES ($1, $2, 0)
		RETURNING id, created_at, updated_at
	`, customerID, CartStatusActive).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		log.Error("failed to create cart", zap.Error(err))
		return nil, err
	}

	log.Info("cart created", zap.Uint("cart_id", c.ID))
	return c, nil
}

func (r *repository) GetItem(ctx context.Context, cartID, productID uint) (*CartItem, error) {
	var item CartItem

	err := r.db.QueryRowContext(ctx, `
		SELECT id, cart_id, product_id, quantity, price
		FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.Price,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, item *CartItem) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, item.CartID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)

	if err != nil {
		logger.FromCtx(ctx).Error("failed to create cart item",
			zap.Uint("cart_id", item.CartID),
			zap.Uint("product_id", item.ProductID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (r *repository) UpdateItem(
	ctx context.Context,
	itemID uint,
	quantity int,
	price decimal.Decimal,
) error {

	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, price = $2
		WHERE id = $3
	`, quantity, price, itemID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFailedUpdateCart
	}

	return nil
}

func (r *repository) DeleteItem(ctx context.Context, itemID uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFailedRemoveCart
	}

	return nil
}

func (r *repository) RecalcTotal(ctx context.Context, cartID uint) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.QueryRowContext(ctx, `
		UPDATE carts
		SET total_price = (
			SELECT COALESCE(SUM(price), 0) FROM cart_items WHERE cart_id = $1
		),
		updated_at = NOW()
		WHERE id = $1
		RETURNING total_price
	`, cartID).Scan(&total)

	if err != nil {
		logger.FromCtx(ctx).Error("failed to recalc cart total",
			zap.Uint("cart_id", cartID),
			zap.Error(err),
		)
		return decimal.Zero, err
	}

	return total, nil
}
