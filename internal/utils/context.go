package utils

import "context"

type contextKey string

const (
	CustomerIDKey contextKey = "customer_id"
	SellerIDKey   contextKey = "seller_id"
)

// SetCustomerContext stores the already-authenticated customer id for the
// request. Authentication itself happens upstream; this layer only carries the
// identity through.
func SetCustomerContext(ctx context.Context, customerID uint) context.Context {
	return context.WithValue(ctx, CustomerIDKey, customerID)
}

func GetCustomerIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(CustomerIDKey).(uint)
	return id, ok
}

func SetSellerContext(ctx context.Context, sellerID uint) context.Context {
	return context.WithValue(ctx, SellerIDKey, sellerID)
}

func GetSellerIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(SellerIDKey).(uint)
	return id, ok
}
