package product

import (
	"context"

	"apparel-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the catalog business logic.
type Service interface {
	GetProduct(ctx context.Context, id uint) (*Product, error)
	GetProductByName(ctx context.Context, name string) (*Product, error)
	ListProducts(ctx context.Context, opts ListOptions) ([]*Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetProductByName(ctx context.Context, name string) (*Product, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) ListProducts(ctx context.Context, opts ListOptions) ([]*Product, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
		zap.String("name", input.Name),
	)

	if input.Price.IsNegative() || input.Price.IsZero() {
		return nil, ErrInvalidPrice
	}
	if input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	p := &Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		CategoryID:  input.CategoryID,
		SellerID:    &input.SellerID,
		ImageURL:    input.ImageURL,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, input UpdateProductInput) (*Product, error) {
	if input.Price != nil && (input.Price.IsNegative() || input.Price.IsZero()) {
		return nil, ErrInvalidPrice
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	return s.repo.Update(ctx, input)
}
