package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
)

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	createMarketerTables(t, db)
	txnRepo := NewTransactionRepository(db)
	earningsRepo := NewEarningsRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	seedTransaction(t, txnRepo, "ad_uow", 5_000_00)

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := txnRepo.Settle(txCtx, "ad_uow", time.Now()); err != nil {
			return err
		}
		if err := earningsRepo.Create(txCtx, &entities.MarketerEarning{
			ID:         uuid.New(),
			MarketerID: uuid.New(),
			MerchantID: uuid.New(),
			AdID:       uuid.New(),
			Amount:     500_00,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Both writes rolled back
	got, err := txnRepo.GetByReference(ctx, "ad_uow")
	require.NoError(t, err)
	require.Equal(t, entities.TransactionPending, got.Status)

	unpaid, err := earningsRepo.SumUnpaid(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, unpaid)
}

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	txnRepo := NewTransactionRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	seedTransaction(t, txnRepo, "ad_commit", 5_000_00)

	require.NoError(t, uow.Do(ctx, func(txCtx context.Context) error {
		return txnRepo.Settle(txCtx, "ad_commit", time.Now())
	}))

	got, err := txnRepo.GetByReference(ctx, "ad_commit")
	require.NoError(t, err)
	require.Equal(t, entities.TransactionSettled, got.Status)

	// The settle guard still reports inside a transaction
	err = uow.Do(ctx, func(txCtx context.Context) error {
		return txnRepo.Settle(txCtx, "ad_commit", time.Now())
	})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
