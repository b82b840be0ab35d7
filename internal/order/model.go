package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusActive   OrderStatus = "ACTIVE"
	StatusCanceled OrderStatus = "CANCELED"
)

type Order struct {
	ID          uint            `json:"id"`
	CustomerID  uint            `json:"customer_id"`
	AddressID   uuid.UUID       `json:"address_id"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      OrderStatus     `json:"status"`
	IsPaid      bool            `json:"is_paid"`
	IsDelivered bool            `json:"is_delivered"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []OrderItem `json:"items"`
}

// OrderItem is frozen at purchase time; price and subtotal never change after
// the order commits.
type OrderItem struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
