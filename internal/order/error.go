package order

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderAlreadyCanceled = errors.New("order already canceled")
	ErrUnauthorized         = errors.New("unauthorized")

	// ErrTransactionFailed wraps any non-domain failure that aborted a
	// checkout, order or cancellation transaction after rollback.
	ErrTransactionFailed = errors.New("transaction failed")
)
