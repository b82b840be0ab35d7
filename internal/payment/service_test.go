package payment

import (
	"context"
	"testing"

	"apparel-be/internal/cart"
	"apparel-be/internal/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByOrderID(ctx context.Context, orderID uint) (*Payment, error) {
	args := m.Called(ctx, orderID)
	if p := args.Get(0); p != nil {
		return p.(*Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ProcessPaymentTx(ctx context.Context, orderID uint, amount decimal.Decimal, method string) (*Payment, error) {
	args := m.Called(ctx, orderID, amount, method)
	if p := args.Get(0); p != nil {
		return p.(*Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID uint) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID uint, canceled *bool) ([]*order.Order, error) {
	args := m.Called(ctx, customerID, canceled)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListBySeller(ctx context.Context, sellerID uint) ([]*order.Order, error) {
	args := m.Called(ctx, sellerID)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) MarkDelivered(ctx context.Context, orderID uint) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockOrderRepository) CheckoutCartTx(ctx context.Context, c *cart.Cart, addressID uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, c, addressID)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) AddOrderTx(ctx context.Context, customerID, productID uint, quantity int, addressID uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, customerID, productID, quantity, addressID)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CancelOrderTx(ctx context.Context, orderID uint) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Pay(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("26.00")

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewService(repo, orderRepo)

		orderRepo.On("GetByID", ctx, uint(500)).
			Return(&order.Order{ID: 500, CustomerID: 1, TotalPrice: amount}, nil)
		repo.On("ProcessPaymentTx", ctx, uint(500), amount, "card").
			Return(&Payment{ID: 7, OrderID: 500, Amount: amount, Status: StatusSuccess}, nil)

		p, err := svc.Pay(ctx, 1, 500, amount, "card")
		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, p.Status)
	})

	t.Run("NotOwner", func(t *testing.T) {
		repo := new(MockRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewService(repo, orderRepo)

		orderRepo.On("GetByID", ctx, uint(500)).
			Return(&order.Order{ID: 500, CustomerID: 2}, nil)

		_, err := svc.Pay(ctx, 1, 500, amount, "card")
		assert.ErrorIs(t, err, order.ErrUnauthorized)
		repo.AssertNotCalled(t, "ProcessPaymentTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockOrderRepository))

		_, err := svc.Pay(ctx, 1, 500, decimal.Zero, "card")
		assert.ErrorIs(t, err, ErrInvalidAmount)
		repo.AssertNotCalled(t, "ProcessPaymentTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
