package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TransactionStatus represents the state of a payment attempt
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionSettled TransactionStatus = "settled"
	TransactionFailed  TransactionStatus = "failed"
)

// Transaction records an ad payment attempt keyed by the gateway's
// reference.
type Transaction struct {
	ID         uuid.UUID         `json:"id"`
	Reference  string            `json:"reference"`
	MerchantID uuid.UUID         `json:"merchantId"`
	ProductID  uuid.UUID         `json:"productId"`
	AdLevel    int               `json:"adLevel"`
	Amount     int64             `json:"amount"`
	Status     TransactionStatus `json:"status"`
	SettledAt  null.Time         `json:"settledAt,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
