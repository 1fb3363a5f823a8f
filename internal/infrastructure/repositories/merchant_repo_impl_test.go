package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
)

func seedMerchant(t *testing.T, repo *MerchantRepository, email, brand string) *entities.Merchant {
	t.Helper()
	m := &entities.Merchant{
		ID:           uuid.New(),
		Email:        email,
		BrandName:    brand,
		PasswordHash: "hash",
		Phone1:       "08012345678",
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMerchantRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := seedMerchant(t, repo, "shop@example.com", "Shop")

	byID, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.Email, byID.Email)
	require.False(t, byID.EmailVerifiedAt.Valid)

	byEmail, err := repo.GetByEmail(ctx, "shop@example.com")
	require.NoError(t, err)
	require.Equal(t, m.ID, byEmail.ID)

	byBrand, err := repo.GetByBrandName(ctx, "Shop")
	require.NoError(t, err)
	require.Equal(t, m.ID, byBrand.ID)

	byID.BrandName = "Shop Deluxe"
	require.NoError(t, repo.Update(ctx, byID))
	again, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Shop Deluxe", again.BrandName)

	require.NoError(t, repo.MarkEmailVerified(ctx, m.ID))
	verified, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, verified.EmailVerifiedAt.Valid)

	// Verifying twice affects no rows
	require.ErrorIs(t, repo.MarkEmailVerified(ctx, m.ID), domainerrors.ErrNotFound)

	require.NoError(t, repo.SoftDelete(ctx, m.ID))
	_, err = repo.GetByID(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMerchantRepository_SetReferrerOnce(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := seedMerchant(t, repo, "shop@example.com", "Shop")
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, repo.SetReferrer(ctx, m.ID, first))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, got.ReferredBy.Valid)
	require.Equal(t, first, got.ReferredBy.UUID)

	// The referrer is immutable once set
	require.ErrorIs(t, repo.SetReferrer(ctx, m.ID, second), domainerrors.ErrAlreadyReferred)

	got, err = repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, first, got.ReferredBy.UUID)

	require.ErrorIs(t, repo.SetReferrer(ctx, uuid.New(), first), domainerrors.ErrNotFound)
}

func TestMerchantRepository_SetMarketAndList(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	marketID := uuid.New()
	a := seedMerchant(t, repo, "a@example.com", "A")
	seedMerchant(t, repo, "b@example.com", "B")

	require.NoError(t, repo.SetMarket(ctx, a.ID, uuid.NullUUID{UUID: marketID, Valid: true}))

	members, total, err := repo.ListByMarket(ctx, marketID, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, a.ID, members[0].ID)

	// Leaving clears membership
	require.NoError(t, repo.SetMarket(ctx, a.ID, uuid.NullUUID{}))
	_, total, err = repo.ListByMarket(ctx, marketID, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
