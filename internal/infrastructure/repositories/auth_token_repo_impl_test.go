package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	domainRepos "soko.backend/internal/domain/repositories"
)

func TestAuthTokenRepository_ConsumeOnce(t *testing.T) {
	db := newTestDB(t)
	createAuthTokenTable(t, db)
	repo := NewAuthTokenRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	require.NoError(t, repo.Create(ctx, ownerID, entities.AccountMerchant, domainRepos.PurposeVerifyEmail, "tok-verify"))

	gotID, accountType, err := repo.Consume(ctx, "tok-verify", domainRepos.PurposeVerifyEmail)
	require.NoError(t, err)
	require.Equal(t, ownerID, gotID)
	require.Equal(t, entities.AccountMerchant, accountType)

	// A consumed token cannot be replayed
	_, _, err = repo.Consume(ctx, "tok-verify", domainRepos.PurposeVerifyEmail)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAuthTokenRepository_PurposeIsChecked(t *testing.T) {
	db := newTestDB(t)
	createAuthTokenTable(t, db)
	repo := NewAuthTokenRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	require.NoError(t, repo.Create(ctx, ownerID, entities.AccountCustomer, domainRepos.PurposeResetPassword, "tok-reset"))

	// A reset token does not verify an email
	_, _, err := repo.Consume(ctx, "tok-reset", domainRepos.PurposeVerifyEmail)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	gotID, accountType, err := repo.Consume(ctx, "tok-reset", domainRepos.PurposeResetPassword)
	require.NoError(t, err)
	require.Equal(t, ownerID, gotID)
	require.Equal(t, entities.AccountCustomer, accountType)
}

func TestAuthTokenRepository_ExpiredTokenRejected(t *testing.T) {
	db := newTestDB(t)
	createAuthTokenTable(t, db)
	repo := NewAuthTokenRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, uuid.New(), entities.AccountCustomer, domainRepos.PurposeVerifyEmail, "tok-old"))
	mustExec(t, db, `UPDATE auth_tokens SET expires_at = ? WHERE token = 'tok-old'`, time.Now().Add(-time.Hour))

	_, _, err := repo.Consume(ctx, "tok-old", domainRepos.PurposeVerifyEmail)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
