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

func seedAd(t *testing.T, repo *AdRepository, productID uuid.UUID, level int, status entities.AdStatus, expiresAt time.Time) *entities.Ad {
	t.Helper()
	ad := &entities.Ad{
		ID:        uuid.New(),
		ProductID: productID,
		Level:     level,
		PaidFor:   level > 0,
		Status:    status,
		ExpiresAt: expiresAt,
	}
	require.NoError(t, repo.Create(context.Background(), ad))
	return ad
}

func TestAdRepository_GetLiveByProduct(t *testing.T) {
	db := newTestDB(t)
	createAdTable(t, db)
	repo := NewAdRepository(db)
	ctx := context.Background()
	now := time.Now()

	productID := uuid.New()

	_, err := repo.GetLiveByProduct(ctx, productID, now)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// An expired ad does not count as live
	seedAd(t, repo, productID, 1, entities.AdStatusExpired, now.Add(-time.Hour))
	_, err = repo.GetLiveByProduct(ctx, productID, now)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	live := seedAd(t, repo, productID, 2, entities.AdStatusActive, now.Add(time.Hour))
	got, err := repo.GetLiveByProduct(ctx, productID, now)
	require.NoError(t, err)
	require.Equal(t, live.ID, got.ID)
	require.Equal(t, 2, got.Level)
	require.True(t, got.PaidFor)
}

func TestAdRepository_Increment(t *testing.T) {
	db := newTestDB(t)
	createAdTable(t, db)
	repo := NewAdRepository(db)
	ctx := context.Background()

	ad := seedAd(t, repo, uuid.New(), 0, entities.AdStatusActive, time.Now().Add(time.Hour))

	require.NoError(t, repo.IncrementViews(ctx, ad.ID))
	require.NoError(t, repo.IncrementViews(ctx, ad.ID))
	require.NoError(t, repo.IncrementClicks(ctx, ad.ID))

	got, err := repo.GetByID(ctx, ad.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.Views)
	require.EqualValues(t, 1, got.Clicks)

	require.ErrorIs(t, repo.IncrementViews(ctx, uuid.New()), domainerrors.ErrNotFound)
}

func TestAdRepository_ListLiveOnlyAndOrdering(t *testing.T) {
	db := newTestDB(t)
	createAdTable(t, db)
	repo := NewAdRepository(db)
	ctx := context.Background()
	now := time.Now()

	low := seedAd(t, repo, uuid.New(), 1, entities.AdStatusActive, now.Add(time.Hour))
	high := seedAd(t, repo, uuid.New(), 3, entities.AdStatusActive, now.Add(time.Hour))
	seedAd(t, repo, uuid.New(), 2, entities.AdStatusExpired, now.Add(-time.Hour))

	ads, total, err := repo.List(ctx, entities.AdFilter{}, now, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, ads, 2)
	require.Equal(t, high.ID, ads[0].ID)
	require.Equal(t, low.ID, ads[1].ID)

	all, total, err := repo.List(ctx, entities.AdFilter{All: true}, now, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, all, 3)
}

func TestAdRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	createAdTable(t, db)
	createProductTables(t, db)
	createMerchantTable(t, db)
	repo := NewAdRepository(db)
	ctx := context.Background()
	now := time.Now()

	marketID := uuid.New()
	merchantID := uuid.New()
	otherMerchant := uuid.New()
	mustExec(t, db, `INSERT INTO merchants (id, email, brand_name, password_hash, phone1, market_id) VALUES (?, 'a@x.com', 'A', 'h', '1', ?)`, merchantID, marketID)
	mustExec(t, db, `INSERT INTO merchants (id, email, brand_name, password_hash, phone1) VALUES (?, 'b@x.com', 'B', 'h', '1')`, otherMerchant)

	productA := uuid.New()
	productB := uuid.New()
	mustExec(t, db, `INSERT INTO products (id, merchant_id, name, description, price, stock, category) VALUES (?, ?, 'p1', 'd', 100, 1, 'other')`, productA, merchantID)
	mustExec(t, db, `INSERT INTO products (id, merchant_id, name, description, price, stock, category) VALUES (?, ?, 'p2', 'd', 100, 1, 'other')`, productB, otherMerchant)

	inMarket := seedAd(t, repo, productA, 1, entities.AdStatusActive, now.Add(time.Hour))
	seedAd(t, repo, productB, 1, entities.AdStatusActive, now.Add(time.Hour))

	byMerchant, total, err := repo.List(ctx, entities.AdFilter{
		MerchantID: uuid.NullUUID{UUID: merchantID, Valid: true},
	}, now, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, inMarket.ID, byMerchant[0].ID)

	byMarket, total, err := repo.List(ctx, entities.AdFilter{
		MarketID: uuid.NullUUID{UUID: marketID, Valid: true},
	}, now, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, inMarket.ID, byMarket[0].ID)
}

func TestAdRepository_ExpireDue(t *testing.T) {
	db := newTestDB(t)
	createAdTable(t, db)
	repo := NewAdRepository(db)
	ctx := context.Background()
	now := time.Now()

	due := seedAd(t, repo, uuid.New(), 1, entities.AdStatusActive, now.Add(-time.Minute))
	alive := seedAd(t, repo, uuid.New(), 1, entities.AdStatusActive, now.Add(time.Hour))

	n, err := repo.ExpireDue(ctx, now, 100)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	expired, err := repo.GetByID(ctx, due.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AdStatusExpired, expired.Status)

	stillActive, err := repo.GetByID(ctx, alive.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AdStatusActive, stillActive.Status)

	// Second sweep finds nothing
	n, err = repo.ExpireDue(ctx, now, 100)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	count, err := repo.CountActive(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
