package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrAlreadyPaid     = errors.New("order already paid")
	ErrOrderCanceled   = errors.New("cannot pay for a canceled order")
	ErrAmountMismatch  = errors.New("payment amount does not match order total")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
)
