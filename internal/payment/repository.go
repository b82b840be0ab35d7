package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"apparel-be/internal/logger"
	"apparel-be/internal/order"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	GetByOrderID(ctx context.Context, orderID uint) (*Payment, error)

	// ProcessPaymentTx records the payment and flags the order paid in one
	// transaction. The order row is locked so a concurrent cancel or a
	// duplicate payment cannot slip in between the check and the update.
	ProcessPaymentTx(ctx context.Context, orderID uint, amount decimal.Decimal, method string) (*Payment, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

func (r *repository) GetByOrderID(ctx context.Context, orderID uint) (*Payment, error) {
	var p Payment

	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, amount, method, status, created_at
		FROM payments
		WHERE order_id = $1
	`, orderID).Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) ProcessPaymentTx(
	ctx context.Context,
	orderID uint,
	amount decimal.Decimal,
	method string,
) (*Payment, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ProcessPaymentTx"),
		zap.Uint("order_id", orderID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", order.ErrTransactionFailed, err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var (
		total  decimal.Decimal
		status order.OrderStatus
		isPaid bool
	)
	err = tx.QueryRowContext(ctx, `
		SELECT total_price, status, is_paid
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, orderID).Scan(&total, &status, &isPaid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", order.ErrTransactionFailed, err)
	}

	if status == order.StatusCanceled {
		return nil, ErrOrderCanceled
	}
	if isPaid {
		return nil, ErrAlreadyPaid
	}
	if !amount.Equal(total) {
		log.Warn("amount mismatch",
			zap.String("expected", total.String()),
			zap.String("got", amount.String()),
		)
		return nil, ErrAmountMismatch
	}

	p := &Payment{
		OrderID: orderID,
		Amount:  amount,
		Method:  method,
		Status:  StatusSuccess,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO payments (order_id, amount, method, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.OrderID, p.Amount, p.Method, p.Status).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", order.ErrTransactionFailed, err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders SET is_paid = true, updated_at = NOW() WHERE id = $1
	`, orderID); err != nil {
		return nil, fmt.Errorf("%w: %v", order.ErrTransactionFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", order.ErrTransactionFailed, err)
	}

	committed = true
	log.Info("payment recorded",
		zap.Uint("payment_id", p.ID),
		zap.String("amount", p.Amount.String()),
	)

	return p, nil
}
