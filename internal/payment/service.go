package payment

import (
	"context"

	"apparel-be/internal/logger"
	"apparel-be/internal/order"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	// Pay settles the customer's order for its exact total.
	Pay(ctx context.Context, customerID, orderID uint, amount decimal.Decimal, method string) (*Payment, error)

	GetPayment(ctx context.Context, customerID, orderID uint) (*Payment, error)
}

type service struct {
	repo      Repository
	orderRepo order.Repository
}

func NewService(repo Repository, orderRepo order.Repository) Service {
	return &service{repo: repo, orderRepo: orderRepo}
}

func (s *service) Pay(
	ctx context.Context,
	customerID, orderID uint,
	amount decimal.Decimal,
	method string,
) (*Payment, error) {

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, order.ErrUnauthorized
	}

	p, err := s.repo.ProcessPaymentTx(ctx, orderID, amount, method)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order paid",
		zap.String("layer", "service"),
		zap.Uint("order_id", orderID),
		zap.Uint("customer_id", customerID),
	)

	return p, nil
}

func (s *service) GetPayment(ctx context.Context, customerID, orderID uint) (*Payment, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, order.ErrUnauthorized
	}

	return s.repo.GetByOrderID(ctx, orderID)
}
