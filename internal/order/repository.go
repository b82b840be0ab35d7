package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"apparel-be/internal/cart"
	"apparel-be/internal/logger"
	"apparel-be/internal/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, orderID uint) (*Order, error)
	ListByCustomer(ctx context.Context, customerID uint, canceled *bool) ([]*Order, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]*Order, error)
	MarkDelivered(ctx context.Context, orderID uint) error

	// CheckoutCartTx converts a cart into an order inside one database
	// transaction: reserve stock per line in insertion order, insert the
	// order and its lines, clear the cart. All or nothing.
	CheckoutCartTx(ctx context.Context, c *cart.Cart, addressID uuid.UUID) (*Order, error)

	// AddOrderTx is the single-line variant of CheckoutCartTx, bypassing the
	// cart entirely.
	AddOrderTx(ctx context.Context, customerID, productID uint, quantity int, addressID uuid.UUID) (*Order, error)

	// CancelOrderTx releases every line's stock and flips the order to
	// Canceled, atomically. Re-cancellation is rejected.
	CancelOrderTx(ctx context.Context, orderID uint) (*Order, error)
}

type repository struct {
	db          *sql.DB
	productRepo product.Repository
}

func NewRepository(database *sql.DB, productRepo product.Repository) Repository {
	return &repository{db: database, productRepo: productRepo}
}

// isDomainErr reports whether err is one of the failures callers must handle
// case by case; anything else that aborts a transaction gets wrapped as
// ErrTransactionFailed.
func isDomainErr(err error) bool {
	return errors.Is(err, product.ErrProductNotFound) ||
		errors.Is(err, product.ErrInsufficientStock) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrOrderAlreadyCanceled)
}

func wrapTxErr(err error) error {
	if isDomainErr(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
}

const orderColumns = `
	id, customer_id, address_id, total_price, status,
	is_paid, is_delivered, created_at, updated_at
`

func (r *repository) GetByID(ctx context.Context, orderID uint) (*Order, error) {
	var o Order

	err := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID, &o.CustomerID, &o.AddressID, &o.TotalPrice, &o.Status,
		&o.IsPaid, &o.IsDelivered, &o.CreatedAt, &o.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, r.db, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *repository) loadItems(ctx context.Context, q queryer, orderID uint) ([]OrderItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.Price, &item.Subtotal,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) ListByCustomer(
	ctx context.Context,
	customerID uint,
	canceled *bool,
) ([]*Order, error) {

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1
	`
	args := []any{customerID}

	if canceled != nil {
		if *canceled {
			query += ` AND status = $2`
			args = append(args, StatusCanceled)
		} else {
			query += ` AND status = $2`
			args = append(args, StatusActive)
		}
	}

	query += ` ORDER BY created_at DESC`

	return r.queryOrders(ctx, query, args...)
}

func (r *repository) ListBySeller(ctx context.Context, sellerID uint) ([]*Order, error) {
	query := `
		SELECT DISTINCT ` + prefixedOrderColumns + `
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE p.seller_id = $1
		ORDER BY o.created_at DESC
	`
	return r.queryOrders(ctx, query, sellerID)
}

const prefixedOrderColumns = `
	o.id, o.customer_id, o.address_id, o.total_price, o.status,
	o.is_paid, o.is_delivered, o.created_at, o.updated_at
`

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.AddressID, &o.TotalPrice, &o.Status,
			&o.IsPaid, &o.IsDelivered, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (r *repository) MarkDelivered(ctx context.Context, orderID uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET is_delivered = true, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, orderID, StatusActive)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) CheckoutCartTx(
	ctx context.Context,
	c *cart.Cart,
	addressID uuid.UUID,
) (*Order, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CheckoutCartTx"),
		zap.Uint("cart_id", c.ID),
		zap.Uint("customer_id", c.CustomerID),
		zap.Int("line_count", len(c.Items)),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, wrapTxErr(err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("checkout transaction rolled back")
			}
		}
	}()

	// Reserve stock per line in insertion order; the first failure aborts the
	// whole checkout with nothing persisted.
	items := make([]OrderItem, 0, len(c.Items))
	total := decimal.Zero

	for _, line := range c.Items {
		price, err := r.productRepo.Reserve(ctx, tx, line.ProductID, line.Quantity)
		if err != nil {
			log.Warn("reservation failed",
				zap.Uint("product_id", line.ProductID),
				zap.Int("quantity", line.Quantity),
				zap.Error(err),
			)
			return nil, wrapTxErr(err)
		}

		subtotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	// Total is recomputed from the reserved lines; the cart's cached total is
	// never trusted.
	o := &Order{
		CustomerID: c.CustomerID,
		AddressID:  addressID,
		TotalPrice: total,
		Status:     StatusActive,
	}

	if err := insertOrder(ctx, tx, o, items); err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, wrapTxErr(err)
	}

	// Clear the cart; the cart row itself survives checkout.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`, c.ID,
	); err != nil {
		return nil, wrapTxErr(err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE carts SET total_price = 0, updated_at = NOW() WHERE id = $1`, c.ID,
	); err != nil {
		return nil, wrapTxErr(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return nil, wrapTxErr(err)
	}

	committed = true
	log.Info("checkout transaction committed",
		zap.Uint("order_id", o.ID),
		zap.String("total", o.TotalPrice.String()),
	)

	return o, nil
}

func (r *repository) AddOrderTx(
	ctx context.Context,
	customerID, productID uint,
	quantity int,
	addressID uuid.UUID,
) (*Order, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddOrderTx"),
		zap.Uint("customer_id", customerID),
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapTxErr(err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	price, err := r.productRepo.Reserve(ctx, tx, productID, quantity)
	if err != nil {
		return nil, wrapTxErr(err)
	}

	subtotal := price.Mul(decimal.NewFromInt(int64(quantity)))
	o := &Order{
		CustomerID: customerID,
		AddressID:  addressID,
		TotalPrice: subtotal,
		Status:     StatusActive,
	}
	items := []OrderItem{{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Subtotal:  subtotal,
	}}

	if err := insertOrder(ctx, tx, o, items); err != nil {
		return nil, wrapTxErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapTxErr(err)
	}

	committed = true
	log.Info("order committed", zap.Uint("order_id", o.ID))

	return o, nil
}

func (r *repository) CancelOrderTx(ctx context.Context, orderID uint) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CancelOrderTx"),
		zap.Uint("order_id", orderID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapTxErr(err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	// Lock the order row so a concurrent cancel cannot release stock twice.
	var o Order
	err = tx.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, orderID).Scan(
		&o.ID, &o.CustomerID, &o.AddressID, &o.TotalPrice, &o.Status,
		&o.IsPaid, &o.IsDelivered, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, wrapTxErr(err)
	}

	if o.Status == StatusCanceled {
		return nil, ErrOrderAlreadyCanceled
	}

	items, err := r.loadItems(ctx, tx, o.ID)
	if err != nil {
		return nil, wrapTxErr(err)
	}

	// Release every line or nothing; a vanished product aborts the whole
	// cancellation.
	for _, item := range items {
		if err := r.productRepo.Release(ctx, tx, item.ProductID, item.Quantity); err != nil {
			log.Warn("stock release failed",
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, wrapTxErr(err)
		}
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`, StatusCanceled, o.ID).Scan(&o.UpdatedAt)
	if err != nil {
		return nil, wrapTxErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapTxErr(err)
	}

	committed = true
	o.Status = StatusCanceled
	o.Items = items

	log.Info("order canceled", zap.Int("lines_released", len(items)))

	return &o, nil
}

func insertOrder(ctx context.Context, tx *sql.Tx, o *Order, items []OrderItem) error {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, address_id, total_price, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, o.CustomerID, o.AddressID, o.TotalPrice, o.Status).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].OrderID = o.ID
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, o.ID, items[i].ProductID, items[i].Quantity, items[i].Price, items[i].Subtotal).
			Scan(&items[i].ID)
		if err != nil {
			return err
		}
	}

	o.Items = items
	return nil
}
