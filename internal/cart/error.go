package cart

import "errors"

var (
	// -- Resource State --
	ErrCartNotFound = errors.New("cart not found")
	ErrCartEmpty    = errors.New("cart is empty")

	// -- Database & Operation Failures --
	ErrFailedUpdateCart = errors.New("failed to update cart item")
	ErrFailedRemoveCart = errors.New("failed to remove cart item")
)
