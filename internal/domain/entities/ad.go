package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AdStatus represents the lifecycle state of an ad
type AdStatus string

const (
	AdStatusPending AdStatus = "PENDING"
	AdStatusActive  AdStatus = "ACTIVE"
	AdStatusExpired AdStatus = "EXPIRED"
)

// Ad levels: 0 is the free tier, 1..3 are paid tiers with increasing
// visibility and duration.
const (
	AdLevelFree = 0
	AdLevelMax  = 3
)

// Ad represents a product advertisement
type Ad struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Level     int       `json:"level"`
	PaidFor   bool      `json:"paidFor"`
	Status    AdStatus  `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
	Views     int64     `json:"views"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// Active reports whether the ad is live at the given instant
func (a *Ad) Active(now time.Time) bool {
	return a.Status != AdStatusPending && now.Before(a.ExpiresAt)
}

// AdFilter narrows ad listings
type AdFilter struct {
	MarketID   uuid.NullUUID
	MerchantID uuid.NullUUID
	// All includes expired and pending ads; default is live ads only.
	All bool
}

// AdInitResponse carries the gateway authorization data returned verbatim
// to the client after initializing an ad payment.
type AdInitResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Amount           int64  `json:"amount"`
	Level            int    `json:"level"`
}

// AdVerifyResponse reports the outcome of a payment verification
type AdVerifyResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Ad        *Ad    `json:"ad,omitempty"`
}
