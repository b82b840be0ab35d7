package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartStatus string

const (
	CartStatusActive    CartStatus = "ACTIVE"
	CartStatusCompleted CartStatus = "COMPLETED"
)

type Cart struct {
	ID         uint            `json:"id"`
	CustomerID uint            `json:"customer_id"`
	Status     CartStatus      `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Items are kept in insertion order (cart_items.id ascending) so checkout
	// processes them deterministically.
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ID        uint            `json:"id"`
	CartID    uint            `json:"cart_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
