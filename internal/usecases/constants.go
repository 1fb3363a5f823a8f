package usecases

import (
	"time"

	"soko.backend/internal/domain/entities"
)

// Ad pricing per level, in minor currency units
var adLevelPrices = map[int]int64{
	1: 5_000_00,
	2: 15_000_00,
	3: 40_000_00,
}

// Paid window per level
var adLevelDurations = map[int]time.Duration{
	1: 7 * 24 * time.Hour,
	2: 14 * 24 * time.Hour,
	3: 30 * 24 * time.Hour,
}

// Free-tier ads run for three days
const freeAdDuration = 3 * 24 * time.Hour

// Marketers earn 10% of every verified ad payment they referred
const referralCommissionPercent = 10

// AdPrice returns the price of a paid ad level
func AdPrice(level int) (int64, bool) {
	price, ok := adLevelPrices[level]
	return price, ok
}

// AdDuration returns the paid window for a level
func AdDuration(level int) (time.Duration, bool) {
	d, ok := adLevelDurations[level]
	return d, ok
}

// ReferralCommission computes the marketer's cut of an ad payment
func ReferralCommission(amount int64) int64 {
	return amount * referralCommissionPercent / 100
}

func validAdLevel(level int) bool {
	return level > entities.AdLevelFree && level <= entities.AdLevelMax
}
