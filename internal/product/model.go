package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CategoryID  uint            `json:"category_id"`
	SellerID    *uint           `json:"seller_id,omitempty"`
	ImageURL    *string         `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ListOptions struct {
	CategoryID *uint
	SellerID   *uint
	Search     *string
	Limit      *int32
	Page       *int32
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	CategoryID  uint
	SellerID    uint
	ImageURL    *string
}

type UpdateProductInput struct {
	ProductID   uint
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	ImageURL    *string
}
