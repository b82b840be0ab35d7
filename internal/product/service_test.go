package product

import (
	"context"
	"testing"

	"apparel-be/internal/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetByName(ctx context.Context, name string) (*Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, input UpdateProductInput) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Reserve(ctx context.Context, q db.DBTX, productID uint, quantity int) (decimal.Decimal, error) {
	args := m.Called(ctx, q, productID, quantity)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRepository) Release(ctx context.Context, q db.DBTX, productID uint, quantity int) error {
	args := m.Called(ctx, q, productID, quantity)
	return args.Error(0)
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*product.Product")).Return(nil)

		p, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:       "Plain Tee",
			Price:      decimal.RequireFromString("25.50"),
			Quantity:   10,
			CategoryID: 2,
			SellerID:   3,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Plain Tee", p.Name)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidPrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:  "Free Tee",
			Price: decimal.Zero,
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:     "Tee",
			Price:    decimal.RequireFromString("5.00"),
			Quantity: -1,
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetByID", ctx, uint(404)).Return(nil, ErrProductNotFound)

	_, err := svc.GetProduct(ctx, 404)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("RejectsZeroPrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		zero := decimal.Zero
		_, err := svc.UpdateProduct(ctx, UpdateProductInput{ProductID: 1, Price: &zero})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Delegates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := UpdateProductInput{ProductID: 1}
		repo.On("Update", ctx, input).Return(&Product{ID: 1}, nil)

		p, err := svc.UpdateProduct(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
	})
}
