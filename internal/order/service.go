package order

import (
	"context"

	"apparel-be/internal/address"
	"apparel-be/internal/cart"
	"apparel-be/internal/logger"
	"apparel-be/internal/metrics"
	"apparel-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Checkout turns the customer's active cart into an order, reserving
	// stock for every line atomically.
	Checkout(ctx context.Context, customerID uint, addressID uuid.UUID) (*Order, error)

	// AddOrder places a single-product order without touching the cart.
	AddOrder(ctx context.Context, customerID, productID uint, quantity int, addressID uuid.UUID) (*Order, error)

	// CancelOrder returns all reserved stock and flips the order to Canceled.
	CancelOrder(ctx context.Context, customerID, orderID uint) (*Order, error)

	GetOrder(ctx context.Context, customerID, orderID uint) (*Order, error)
	ListOrders(ctx context.Context, customerID uint, canceled *bool) ([]*Order, error)
	ListSellerOrders(ctx context.Context, sellerID uint) ([]*Order, error)
	MarkDelivered(ctx context.Context, orderID uint) error
}

type service struct {
	repo        Repository
	cartRepo    cart.Repository
	addressRepo address.Repository
}

func NewService(repo Repository, cartRepo cart.Repository, addressRepo address.Repository) Service {
	return &service{repo: repo, cartRepo: cartRepo, addressRepo: addressRepo}
}

// ownedAddress resolves addressID and checks it belongs to the customer.
// A foreign address is indistinguishable from a missing one.
func (s *service) ownedAddress(ctx context.Context, customerID uint, addressID uuid.UUID) (*address.Address, error) {
	addr, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if addr.CustomerID != customerID || !addr.IsActive {
		return nil, address.ErrAddressNotFound
	}
	return addr, nil
}

func (s *service) Checkout(ctx context.Context, customerID uint, addressID uuid.UUID) (*Order, error) {
	timer := metrics.StartTimer()
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("customer_id", customerID),
	)

	c, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, cart.ErrCartNotFound
	}
	if len(c.Items) == 0 {
		return nil, cart.ErrCartEmpty
	}

	if _, err := s.ownedAddress(ctx, customerID, addressID); err != nil {
		return nil, err
	}

	o, err := s.repo.CheckoutCartTx(ctx, c, addressID)
	if err != nil {
		metrics.CheckoutsAborted.Inc()
		log.Warn("checkout aborted", zap.Error(err))
		return nil, err
	}

	metrics.CheckoutsCommitted.Inc()
	log.Info("checkout completed",
		zap.Uint("order_id", o.ID),
		zap.String("total", o.TotalPrice.String()),
		zap.Duration("took", timer.Duration()),
	)

	return o, nil
}

func (s *service) AddOrder(
	ctx context.Context,
	customerID, productID uint,
	quantity int,
	addressID uuid.UUID,
) (*Order, error) {

	if quantity <= 0 {
		return nil, product.ErrInvalidQuantity
	}

	if _, err := s.ownedAddress(ctx, customerID, addressID); err != nil {
		return nil, err
	}

	o, err := s.repo.AddOrderTx(ctx, customerID, productID, quantity, addressID)
	if err != nil {
		metrics.CheckoutsAborted.Inc()
		return nil, err
	}

	metrics.CheckoutsCommitted.Inc()
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, customerID, orderID uint) (*Order, error) {
	existing, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing.CustomerID != customerID {
		return nil, ErrUnauthorized
	}

	o, err := s.repo.CancelOrderTx(ctx, orderID)
	if err != nil {
		return nil, err
	}

	metrics.OrdersCanceled.Inc()
	logger.FromCtx(ctx).Info("order canceled",
		zap.String("layer", "service"),
		zap.Uint("order_id", orderID),
		zap.Uint("customer_id", customerID),
	)

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, customerID, orderID uint) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, ErrUnauthorized
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context, customerID uint, canceled *bool) ([]*Order, error) {
	return s.repo.ListByCustomer(ctx, customerID, canceled)
}

func (s *service) ListSellerOrders(ctx context.Context, sellerID uint) ([]*Order, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

// MarkDelivered flags an active order as delivered. A canceled order reads
// the same as a missing one.
func (s *service) MarkDelivered(ctx context.Context, orderID uint) error {
	return s.repo.MarkDelivered(ctx, orderID)
}
