package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
)

func seedMarketer(t *testing.T, repo *MarketerRepository, username string) *entities.Marketer {
	t.Helper()
	m := &entities.Marketer{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		Username:      username,
		BankName:      "First Bank",
		AccountName:   "Test Account",
		AccountNumber: "0123456789",
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMarketerRepository_CreateAndLookups(t *testing.T) {
	db := newTestDB(t)
	createMarketerTables(t, db)
	repo := NewMarketerRepository(db)
	ctx := context.Background()

	m := seedMarketer(t, repo, "hustler")

	byID, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.False(t, byID.Verified)

	byCustomer, err := repo.GetByCustomerID(ctx, m.CustomerID)
	require.NoError(t, err)
	require.Equal(t, m.ID, byCustomer.ID)

	byUsername, err := repo.GetByUsername(ctx, "hustler")
	require.NoError(t, err)
	require.Equal(t, m.ID, byUsername.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.SetVerified(ctx, m.ID, true))
	verified, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, verified.Verified)

	require.ErrorIs(t, repo.SetVerified(ctx, uuid.New(), true), domainerrors.ErrNotFound)

	require.NoError(t, repo.SoftDelete(ctx, m.ID))
	_, err = repo.GetByID(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEarningsRepository_OneEarningPerAd(t *testing.T) {
	db := newTestDB(t)
	createMarketerTables(t, db)
	repo := NewEarningsRepository(db)
	ctx := context.Background()

	marketerID := uuid.New()
	adID := uuid.New()

	require.NoError(t, repo.Create(ctx, &entities.MarketerEarning{
		ID:         uuid.New(),
		MarketerID: marketerID,
		MerchantID: uuid.New(),
		AdID:       adID,
		Amount:     500_00,
	}))

	// A second earning for the same ad is rejected
	require.Error(t, repo.Create(ctx, &entities.MarketerEarning{
		ID:         uuid.New(),
		MarketerID: marketerID,
		MerchantID: uuid.New(),
		AdID:       adID,
		Amount:     500_00,
	}))

	earning, err := repo.GetByAd(ctx, adID)
	require.NoError(t, err)
	require.EqualValues(t, 500_00, earning.Amount)
	require.False(t, earning.Paid)
}

func TestEarningsRepository_PayoutFlow(t *testing.T) {
	db := newTestDB(t)
	createMarketerTables(t, db)
	repo := NewEarningsRepository(db)
	ctx := context.Background()

	marketerID := uuid.New()
	other := uuid.New()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, &entities.MarketerEarning{
			ID:         uuid.New(),
			MarketerID: marketerID,
			MerchantID: uuid.New(),
			AdID:       uuid.New(),
			Amount:     1_500_00,
		}))
	}
	require.NoError(t, repo.Create(ctx, &entities.MarketerEarning{
		ID:         uuid.New(),
		MarketerID: other,
		MerchantID: uuid.New(),
		AdID:       uuid.New(),
		Amount:     4_000_00,
	}))

	unpaid, err := repo.SumUnpaid(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 7_000_00, unpaid)

	n, err := repo.MarkAllPaid(ctx, marketerID, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// Second payout finds nothing; the other marketer stays unpaid
	n, err = repo.MarkAllPaid(ctx, marketerID, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	unpaid, err = repo.SumUnpaid(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4_000_00, unpaid)

	paidOnly := true
	paid, err := repo.ListByMarketer(ctx, marketerID, &paidOnly)
	require.NoError(t, err)
	require.Len(t, paid, 2)
	require.True(t, paid[0].PaidAt.Valid)

	all, err := repo.ListByMarketer(ctx, marketerID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
