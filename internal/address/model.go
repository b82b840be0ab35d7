package address

import (
	"github.com/google/uuid"
)

type Address struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uint      `json:"customer_id"`

	Name  string `json:"name"`
	Phone string `json:"phone"`

	Address1 string  `json:"address_line1"`
	Address2 *string `json:"address_line2,omitempty"`

	City     string `json:"city"`
	Province string `json:"province"`
	Postal   string `json:"postal_code"`
	Country  string `json:"country"`

	IsDefault bool `json:"is_default"`
	IsActive  bool `json:"is_active"`
}

type CreateAddressInput struct {
	Name         string
	Phone        string
	AddressLine1 string
	AddressLine2 *string
	City         string
	Province     string
	PostalCode   string
	Country      string
	SetAsDefault bool
}
