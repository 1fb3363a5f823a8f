package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CustomerRole represents customer account roles
type CustomerRole string

const (
	RoleCustomer CustomerRole = "CUSTOMER"
	RoleMarketer CustomerRole = "MARKETER"
	RoleAdmin    CustomerRole = "ADMIN"
)

// Customer represents a customer account
type Customer struct {
	ID              uuid.UUID     `json:"id"`
	Email           string        `json:"email"`
	Name            string        `json:"name"`
	Role            CustomerRole  `json:"role"`
	PasswordHash    string        `json:"-"`
	Phone1          string        `json:"phone1"`
	Phone2          null.String   `json:"phone2,omitempty"`
	Addresses       []Address     `json:"addresses,omitempty"`
	MarketerID      uuid.NullUUID `json:"marketerId,omitempty"`
	EmailVerifiedAt null.Time     `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	DeletedAt       null.Time     `json:"-"`
}

// CustomerUpdateInput represents input for profile updates
type CustomerUpdateInput struct {
	Name   string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone1 string `json:"phone1" binding:"omitempty,min=7,max=20"`
	Phone2 string `json:"phone2" binding:"omitempty,min=7,max=20"`
}

// CustomerProfile is the customer view returned by the API
type CustomerProfile struct {
	ID         uuid.UUID     `json:"id"`
	Email      string        `json:"email"`
	Name       string        `json:"name"`
	Role       CustomerRole  `json:"role"`
	Phone1     string        `json:"phone1"`
	Phone2     null.String   `json:"phone2,omitempty"`
	Addresses  []Address     `json:"addresses"`
	MarketerID uuid.NullUUID `json:"marketerId,omitempty"`
	Verified   bool          `json:"verified"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Profile builds the API view of a customer
func (c *Customer) Profile() *CustomerProfile {
	addresses := c.Addresses
	if addresses == nil {
		addresses = []Address{}
	}
	return &CustomerProfile{
		ID:         c.ID,
		Email:      c.Email,
		Name:       c.Name,
		Role:       c.Role,
		Phone1:     c.Phone1,
		Phone2:     c.Phone2,
		Addresses:  addresses,
		MarketerID: c.MarketerID,
		Verified:   c.EmailVerifiedAt.Valid,
		CreatedAt:  c.CreatedAt,
	}
}
