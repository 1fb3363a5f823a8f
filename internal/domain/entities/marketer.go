package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Marketer represents a referral-program profile held by a customer.
// Username doubles as the referrer code merchants attach to.
type Marketer struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	Username      string    `json:"username"`
	Verified      bool      `json:"verified"`
	BankName      string    `json:"bankName"`
	AccountName   string    `json:"accountName"`
	AccountNumber string    `json:"accountNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	DeletedAt     null.Time `json:"-"`
}

// MarketerEarning represents a referral commission generated by a
// verified ad payment. Exactly one earning exists per ad.
type MarketerEarning struct {
	ID         uuid.UUID `json:"id"`
	MarketerID uuid.UUID `json:"marketerId"`
	MerchantID uuid.UUID `json:"merchantId"`
	AdID       uuid.UUID `json:"adId"`
	Amount     int64     `json:"amount"`
	Paid       bool      `json:"paid"`
	PaidAt     null.Time `json:"paidAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MarketerRegisterInput represents input for registering a marketer profile
type MarketerRegisterInput struct {
	Username      string `json:"username" binding:"required,min=3,max=64,alphanum"`
	BankName      string `json:"bankName" binding:"required,min=2,max=100"`
	AccountName   string `json:"accountName" binding:"required,min=2,max=255"`
	AccountNumber string `json:"accountNumber" binding:"required,min=6,max=32"`
}

// EarningsSummary aggregates a marketer's earnings
type EarningsSummary struct {
	Earnings    []MarketerEarning `json:"earnings"`
	TotalEarned int64             `json:"totalEarned"`
	TotalUnpaid int64             `json:"totalUnpaid"`
}
