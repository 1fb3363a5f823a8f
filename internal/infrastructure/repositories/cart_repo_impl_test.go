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

func TestCartRepository_UpsertReplacesLine(t *testing.T) {
	db := newTestDB(t)
	createCartTable(t, db)
	repo := NewCartRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	productID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &entities.CartItem{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   2,
		TotalPrice: 200_00,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}))

	line, err := repo.GetLine(ctx, customerID, productID)
	require.NoError(t, err)
	require.Equal(t, 2, line.Quantity)
	require.EqualValues(t, 200_00, line.TotalPrice)

	// Second upsert for the same pair replaces quantity and total
	require.NoError(t, repo.Upsert(ctx, &entities.CartItem{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   5,
		TotalPrice: 500_00,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}))

	line, err = repo.GetLine(ctx, customerID, productID)
	require.NoError(t, err)
	require.Equal(t, 5, line.Quantity)
	require.EqualValues(t, 500_00, line.TotalPrice)

	items, err := repo.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCartRepository_ListPreloadsProducts(t *testing.T) {
	db := newTestDB(t)
	createCartTable(t, db)
	createProductTables(t, db)
	repo := NewCartRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	productID := uuid.New()
	mustExec(t, db, `INSERT INTO products (id, merchant_id, name, description, price, stock, category) VALUES (?, ?, 'Sneakers', 'd', 15000, 10, 'fashion')`, productID, uuid.New())
	mustExec(t, db, `INSERT INTO product_images (id, product_id, url, is_display) VALUES (?, ?, '/uploads/a.jpg', 1)`, uuid.New(), productID)

	require.NoError(t, repo.Upsert(ctx, &entities.CartItem{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   1,
		TotalPrice: 15000,
	}))

	items, err := repo.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	require.Equal(t, "Sneakers", items[0].Product.Name)
	require.Len(t, items[0].Product.Images, 1)
	require.True(t, items[0].Product.Images[0].IsDisplay)

	// Other customers see an empty cart
	items, err = repo.ListByCustomer(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCartRepository_DeleteLineAndAll(t *testing.T) {
	db := newTestDB(t)
	createCartTable(t, db)
	repo := NewCartRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	for _, productID := range []uuid.UUID{first, second} {
		require.NoError(t, repo.Upsert(ctx, &entities.CartItem{
			ID:         uuid.New(),
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   1,
			TotalPrice: 100,
		}))
	}

	require.NoError(t, repo.DeleteLine(ctx, customerID, first))
	require.ErrorIs(t, repo.DeleteLine(ctx, customerID, first), domainerrors.ErrNotFound)

	_, err := repo.GetLine(ctx, customerID, first)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.DeleteAll(ctx, customerID))
	items, err := repo.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Empty(t, items)

	// Clearing an already empty cart is fine
	require.NoError(t, repo.DeleteAll(ctx, customerID))
}
