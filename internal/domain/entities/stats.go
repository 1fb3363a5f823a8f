package entities

// PlatformStats aggregates platform-wide counts and revenue figures.
// Revenue and liability are in minor currency units.
type PlatformStats struct {
	Customers         int64 `json:"customers"`
	Merchants         int64 `json:"merchants"`
	Markets           int64 `json:"markets"`
	Products          int64 `json:"products"`
	ActiveAds         int64 `json:"activeAds"`
	Revenue           int64 `json:"revenue"`
	EarningsLiability int64 `json:"earningsLiability"`
}
