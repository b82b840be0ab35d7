package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusSuccess PaymentStatus = "SUCCESS"
)

type Payment struct {
	ID      uint            `json:"id"`
	OrderID uint            `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	Status  PaymentStatus   `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
