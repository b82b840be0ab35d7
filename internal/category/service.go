package category

import (
	"context"

	"apparel-be/internal/utils"
)

type Service interface {
	GetCategory(ctx context.Context, id uint) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	normalized := utils.NormalizeCategoryName(name)
	if normalized == "" {
		return nil, ErrEmptyName
	}

	c := &Category{Name: normalized}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
