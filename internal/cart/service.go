package cart

import (
	"context"

	"apparel-be/internal/logger"
	"apparel-be/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service maintains one cart per customer.
type Service interface {
	// AddOrUpdateItem applies a quantity delta to a cart line, creating the
	// cart and the line as needed. A resulting quantity of zero or less
	// removes the line. Line price is always recomputed from the live catalog
	// price.
	AddOrUpdateItem(ctx context.Context, customerID, productID uint, deltaQuantity int) (*Cart, error)
	RemoveItem(ctx context.Context, customerID, productID uint) (*Cart, error)
	GetCart(ctx context.Context, customerID uint) (*Cart, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) AddOrUpdateItem(
	ctx context.Context,
	customerID, productID uint,
	deltaQuantity int,
) (*Cart, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddOrUpdateItem"),
		zap.Uint("customer_id", customerID),
		zap.Uint("product_id", productID),
		zap.Int("delta", deltaQuantity),
	)

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = s.repo.Create(ctx, customerID)
		if err != nil {
			return nil, err
		}
	}

	item, err := s.repo.GetItem(ctx, c.ID, productID)
	if err != nil {
		return nil, err
	}

	finalQty := deltaQuantity
	if item != nil {
		finalQty += item.Quantity
	}

	switch {
	case finalQty <= 0:
		if item != nil {
			if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
				return nil, err
			}
			log.Info("cart line removed by delta")
		}
	default:
		if finalQty > p.Quantity {
			log.Warn("requested quantity exceeds stock",
				zap.Int("requested", finalQty),
				zap.Int("available", p.Quantity),
			)
			return nil, product.ErrInsufficientStock
		}

		linePrice := p.Price.Mul(decimal.NewFromInt(int64(finalQty)))
		if item == nil {
			err = s.repo.CreateItem(ctx, &CartItem{
				CartID:    c.ID,
				ProductID: productID,
				Quantity:  finalQty,
				Price:     linePrice,
			})
		} else {
			err = s.repo.UpdateItem(ctx, item.ID, finalQty, linePrice)
		}
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.RecalcTotal(ctx, c.ID); err != nil {
		return nil, err
	}

	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *service) RemoveItem(
	ctx context.Context,
	customerID, productID uint,
) (*Cart, error) {

	c, err := s.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	item, err := s.repo.GetItem(ctx, c.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, product.ErrProductNotFound
	}

	if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
		return nil, err
	}

	if _, err := s.repo.RecalcTotal(ctx, c.ID); err != nil {
		return nil, err
	}

	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *service) GetCart(ctx context.Context, customerID uint) (*Cart, error) {
	c, err := s.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}
