package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAdPricing(t *testing.T) {
	cases := []struct {
		level    int
		price    int64
		duration time.Duration
	}{
		{1, 5_000_00, 7 * 24 * time.Hour},
		{2, 15_000_00, 14 * 24 * time.Hour},
		{3, 40_000_00, 30 * 24 * time.Hour},
	}
	for _, tc := range cases {
		price, ok := AdPrice(tc.level)
		require.True(t, ok)
		require.Equal(t, tc.price, price)

		d, ok := AdDuration(tc.level)
		require.True(t, ok)
		require.Equal(t, tc.duration, d)
	}

	_, ok := AdPrice(0)
	require.False(t, ok)
	_, ok = AdDuration(4)
	require.False(t, ok)
}

func TestReferralCommission(t *testing.T) {
	require.EqualValues(t, 500_00, ReferralCommission(5_000_00))
	require.EqualValues(t, 1_500_00, ReferralCommission(15_000_00))
	require.EqualValues(t, 4_000_00, ReferralCommission(40_000_00))
}
