package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
)

func seedProduct(t *testing.T, repo *ProductRepository, merchantID uuid.UUID, name string, price int64) *entities.Product {
	t.Helper()
	p := &entities.Product{
		ID:          uuid.New(),
		MerchantID:  merchantID,
		Name:        name,
		Description: "description",
		Price:       price,
		Stock:       10,
		Category:    entities.CategoryFashion,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProductRepository_UpdateKeepsPreviousPrice(t *testing.T) {
	db := newTestDB(t)
	createProductTables(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, repo, uuid.New(), "Sneakers", 20_000_00)

	p.Price = 18_000_00
	p.PreviousPrice = null.Int64From(20_000_00)
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 18_000_00, got.Price)
	require.True(t, got.PreviousPrice.Valid)
	require.EqualValues(t, 20_000_00, got.PreviousPrice.Int64)

	require.ErrorIs(t, repo.Update(ctx, &entities.Product{ID: uuid.New(), Category: entities.CategoryFashion}), domainerrors.ErrNotFound)
}

func TestProductRepository_ImagesPreloaded(t *testing.T) {
	db := newTestDB(t)
	createProductTables(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, repo, uuid.New(), "Sneakers", 100)
	require.NoError(t, repo.AddImages(ctx, p.ID, []entities.ProductImage{
		{ID: uuid.New(), URL: "/uploads/one.jpg", IsDisplay: true},
		{ID: uuid.New(), URL: "/uploads/two.jpg"},
	}))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 2)

	// Empty image batches are a no-op
	require.NoError(t, repo.AddImages(ctx, p.ID, nil))
}

func TestProductRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	createProductTables(t, db)
	createMerchantTable(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	marketID := uuid.New()
	inMarket := uuid.New()
	outside := uuid.New()
	mustExec(t, db, `INSERT INTO merchants (id, email, brand_name, password_hash, phone1, market_id) VALUES (?, 'a@x.com', 'A', 'h', '1', ?)`, inMarket, marketID)
	mustExec(t, db, `INSERT INTO merchants (id, email, brand_name, password_hash, phone1) VALUES (?, 'b@x.com', 'B', 'h', '1')`, outside)

	sneakers := seedProduct(t, repo, inMarket, "Red Sneakers", 100)
	seedProduct(t, repo, outside, "Blender", 200)

	byMerchant, total, err := repo.List(ctx, entities.ProductFilter{
		MerchantID: uuid.NullUUID{UUID: inMarket, Valid: true},
	}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, sneakers.ID, byMerchant[0].ID)

	byMarket, total, err := repo.List(ctx, entities.ProductFilter{
		MarketID: uuid.NullUUID{UUID: marketID, Valid: true},
	}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, sneakers.ID, byMarket[0].ID)

	bySearch, total, err := repo.List(ctx, entities.ProductFilter{Search: "sneak"}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, sneakers.ID, bySearch[0].ID)

	_, total, err = repo.List(ctx, entities.ProductFilter{}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
}

func TestProductRepository_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	createProductTables(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, repo, uuid.New(), "Gone", 100)

	require.NoError(t, repo.SoftDelete(ctx, p.ID))
	_, err := repo.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.SoftDelete(ctx, p.ID), domainerrors.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}
