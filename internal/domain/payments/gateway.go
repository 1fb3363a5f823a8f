package payments

import "context"

// Gateway status values as reported by the payment provider
const (
	StatusSuccess   = "success"
	StatusPending   = "pending"
	StatusFailed    = "failed"
	StatusAbandoned = "abandoned"
)

// InitRequest initializes a payment session at the gateway. Amount is in
// minor currency units.
type InitRequest struct {
	Email     string
	Amount    int64
	Reference string
	Metadata  map[string]string
}

// InitResult carries the gateway's authorization data back verbatim
type InitResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult reports a payment's state at the gateway
type VerifyResult struct {
	Reference string
	Status    string
	Amount    int64
	Channel   string
}

// Gateway defines the external payment provider operations
type Gateway interface {
	Initialize(ctx context.Context, req InitRequest) (*InitResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
