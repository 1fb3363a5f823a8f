package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
)

func seedCustomer(t *testing.T, repo *CustomerRepository, email string) *entities.Customer {
	t.Helper()
	c := &entities.Customer{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Ada",
		Role:         entities.RoleCustomer,
		PasswordHash: "hash",
		Phone1:       "08012345678",
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestCustomerRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createCustomerTable(t, db)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, repo, "ada@example.com")

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, c.ID, byEmail.ID)
	require.Equal(t, entities.RoleCustomer, byEmail.Role)

	byEmail.Name = "Ada O."
	require.NoError(t, repo.Update(ctx, byEmail))

	require.NoError(t, repo.UpdateRole(ctx, c.ID, entities.RoleMarketer))
	require.NoError(t, repo.SetPassword(ctx, c.ID, "newhash"))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada O.", got.Name)
	require.Equal(t, entities.RoleMarketer, got.Role)
	require.Equal(t, "newhash", got.PasswordHash)

	require.NoError(t, repo.MarkEmailVerified(ctx, c.ID))
	require.ErrorIs(t, repo.MarkEmailVerified(ctx, c.ID), domainerrors.ErrNotFound)
}

func TestCustomerRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	createCustomerTable(t, db)
	createAddressTable(t, db)
	createCartTable(t, db)
	repo := NewCustomerRepository(db)
	addressRepo := NewAddressRepository(db)
	cartRepo := NewCartRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, repo, "ada@example.com")
	require.NoError(t, addressRepo.Create(ctx, &entities.Address{
		ID:        uuid.New(),
		OwnerID:   c.ID,
		OwnerType: entities.AccountCustomer,
		Street:    "s", City: "c", State: "st", Country: "Nigeria",
	}))
	require.NoError(t, cartRepo.Upsert(ctx, &entities.CartItem{
		ID:         uuid.New(),
		CustomerID: c.ID,
		ProductID:  uuid.New(),
		Quantity:   1,
		TotalPrice: 100,
	}))

	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.GetByID(ctx, c.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	addresses, err := addressRepo.ListByOwner(ctx, c.ID, entities.AccountCustomer)
	require.NoError(t, err)
	require.Empty(t, addresses)

	items, err := cartRepo.ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAddressRepository_DeleteScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	createAddressTable(t, db)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	addr := &entities.Address{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerType: entities.AccountMerchant,
		Street:    "s", City: "c", State: "st", Country: "Nigeria",
	}
	require.NoError(t, repo.Create(ctx, addr))

	require.ErrorIs(t, repo.Delete(ctx, addr.ID, uuid.New()), domainerrors.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, addr.ID, ownerID))

	addresses, err := repo.ListByOwner(ctx, ownerID, entities.AccountMerchant)
	require.NoError(t, err)
	require.Empty(t, addresses)
}
