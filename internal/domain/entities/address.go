package entities

import (
	"time"

	"github.com/google/uuid"
)

// AccountType identifies which account family a record belongs to
type AccountType string

const (
	AccountCustomer AccountType = "customer"
	AccountMerchant AccountType = "merchant"
)

// Address represents a delivery or business address
type Address struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"-"`
	OwnerType AccountType `json:"-"`
	Street    string       `json:"street"`
	City      string       `json:"city"`
	State     string       `json:"state"`
	Country   string       `json:"country"`
	CreatedAt time.Time    `json:"createdAt"`
}

// AddressInput represents input for adding an address
type AddressInput struct {
	Street  string `json:"street" binding:"required,min=2,max=255"`
	City    string `json:"city" binding:"required,min=2,max=100"`
	State   string `json:"state" binding:"required,min=2,max=100"`
	Country string `json:"country" binding:"required,min=2,max=100"`
}
