package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Merchant represents a merchant account
type Merchant struct {
	ID              uuid.UUID     `json:"id"`
	Email           string        `json:"email"`
	BrandName       string        `json:"brandName"`
	PasswordHash    string        `json:"-"`
	Phone1          string        `json:"phone1"`
	Phone2          null.String   `json:"phone2,omitempty"`
	Addresses       []Address     `json:"addresses,omitempty"`
	MarketID        uuid.NullUUID `json:"marketId,omitempty"`
	ReferredBy      uuid.NullUUID `json:"referredBy,omitempty"`
	EmailVerifiedAt null.Time     `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	DeletedAt       null.Time     `json:"-"`
}

// MerchantUpdateInput represents input for merchant profile updates
type MerchantUpdateInput struct {
	BrandName string `json:"brandName" binding:"omitempty,min=2,max=255"`
	Phone1    string `json:"phone1" binding:"omitempty,min=7,max=20"`
	Phone2    string `json:"phone2" binding:"omitempty,min=7,max=20"`
}

// JoinMarketInput represents input for joining a market
type JoinMarketInput struct {
	MarketID uuid.UUID `json:"marketId" binding:"required"`
}

// ConnectMarketerInput carries a marketer referrer code
type ConnectMarketerInput struct {
	ReferrerCode string `json:"referrerCode" binding:"required,min=3,max=64"`
}

// MerchantProfile is the merchant view returned by the API
type MerchantProfile struct {
	ID         uuid.UUID     `json:"id"`
	Email      string        `json:"email"`
	BrandName  string        `json:"brandName"`
	Phone1     string        `json:"phone1"`
	Phone2     null.String   `json:"phone2,omitempty"`
	Addresses  []Address     `json:"addresses"`
	MarketID   uuid.NullUUID `json:"marketId,omitempty"`
	ReferredBy uuid.NullUUID `json:"referredBy,omitempty"`
	Verified   bool          `json:"verified"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Profile builds the API view of a merchant
func (m *Merchant) Profile() *MerchantProfile {
	addresses := m.Addresses
	if addresses == nil {
		addresses = []Address{}
	}
	return &MerchantProfile{
		ID:         m.ID,
		Email:      m.Email,
		BrandName:  m.BrandName,
		Phone1:     m.Phone1,
		Phone2:     m.Phone2,
		Addresses:  addresses,
		MarketID:   m.MarketID,
		ReferredBy: m.ReferredBy,
		Verified:   m.EmailVerifiedAt.Valid,
		CreatedAt:  m.CreatedAt,
	}
}
