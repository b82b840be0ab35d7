package address

import (
	"context"

	"apparel-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	ListAddresses(ctx context.Context, customerID uint) ([]*Address, error)
	CreateAddress(ctx context.Context, customerID uint, input CreateAddressInput) (*Address, error)
	DeactivateAddress(ctx context.Context, customerID uint, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, customerID uint, addressID uuid.UUID) error

	// GetOwnedAddress resolves an address and verifies ownership. A foreign or
	// missing address is indistinguishable to the caller.
	GetOwnedAddress(ctx context.Context, customerID uint, addressID uuid.UUID) (*Address, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListAddresses(ctx context.Context, customerID uint) ([]*Address, error) {
	return s.repo.GetByCustomerID(ctx, customerID)
}

func (s *service) CreateAddress(
	ctx context.Context,
	customerID uint,
	input CreateAddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAddress"),
		zap.Uint("customer_id", customerID),
	)

	addr := &Address{
		ID:         uuid.New(),
		CustomerID: customerID,
		Name:       input.Name,
		Phone:      input.Phone,
		Address1:   input.AddressLine1,
		Address2:   input.AddressLine2,
		City:       input.City,
		Province:   input.Province,
		Postal:     input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.SetAsDefault,
		IsActive:   true,
	}

	if input.SetAsDefault {
		if err := s.repo.ClearDefault(ctx, customerID); err != nil {
			log.Error("failed to clear default address", zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		return nil, err
	}

	log.Info("address created", zap.String("address_id", addr.ID.String()))
	return addr, nil
}

func (s *service) DeactivateAddress(
	ctx context.Context,
	customerID uint,
	addressID uuid.UUID,
) error {

	if _, err := s.GetOwnedAddress(ctx, customerID, addressID); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, addressID)
}

func (s *service) SetDefaultAddress(
	ctx context.Context,
	customerID uint,
	addressID uuid.UUID,
) error {

	if _, err := s.GetOwnedAddress(ctx, customerID, addressID); err != nil {
		return err
	}

	if err := s.repo.ClearDefault(ctx, customerID); err != nil {
		return err
	}
	return s.repo.SetDefault(ctx, customerID, addressID)
}

func (s *service) GetOwnedAddress(
	ctx context.Context,
	customerID uint,
	addressID uuid.UUID,
) (*Address, error) {

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if addr.CustomerID != customerID {
		return nil, ErrAddressNotFound
	}
	return addr, nil
}
