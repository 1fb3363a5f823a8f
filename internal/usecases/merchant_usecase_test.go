package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
)

func newMerchantUsecase(t *testing.T) (*MerchantUsecase, *mockMerchantRepo, *mockMarketRepo, *mockMarketerRepo) {
	t.Helper()
	merchantRepo := &mockMerchantRepo{}
	marketRepo := &mockMarketRepo{}
	marketerRepo := &mockMarketerRepo{}
	u := NewMerchantUsecase(merchantRepo, marketRepo, marketerRepo, &mockAddressRepo{})
	return u, merchantRepo, marketRepo, marketerRepo
}

func TestConnectMarketer(t *testing.T) {
	u, merchantRepo, _, marketerRepo := newMerchantUsecase(t)
	ctx := context.Background()

	merchantID := uuid.New()
	marketerID := uuid.New()
	merchantRepo.On("GetByID", ctx, merchantID).Return(&entities.Merchant{ID: merchantID}, nil)
	marketerRepo.On("GetByUsername", ctx, "hustler").Return(&entities.Marketer{ID: marketerID, Verified: true}, nil)
	merchantRepo.On("SetReferrer", ctx, merchantID, marketerID).Return(nil)

	require.NoError(t, u.ConnectMarketer(ctx, merchantID, entities.ConnectMarketerInput{ReferrerCode: "hustler"}))
	merchantRepo.AssertExpectations(t)
}

func TestConnectMarketer_UnverifiedMarketer(t *testing.T) {
	u, merchantRepo, _, marketerRepo := newMerchantUsecase(t)
	ctx := context.Background()

	merchantID := uuid.New()
	merchantRepo.On("GetByID", ctx, merchantID).Return(&entities.Merchant{ID: merchantID}, nil)
	marketerRepo.On("GetByUsername", ctx, "newbie").Return(&entities.Marketer{ID: uuid.New(), Verified: false}, nil)

	err := u.ConnectMarketer(ctx, merchantID, entities.ConnectMarketerInput{ReferrerCode: "newbie"})
	requireAppError(t, err, http.StatusForbidden, "MARKETER_UNVERIFIED")
	merchantRepo.AssertNotCalled(t, "SetReferrer", ctx, uuid.Nil, uuid.Nil)
}

func TestConnectMarketer_AlreadyReferred(t *testing.T) {
	ctx := context.Background()

	t.Run("existing referrer wins over any code", func(t *testing.T) {
		u, merchantRepo, _, marketerRepo := newMerchantUsecase(t)

		merchantID := uuid.New()
		merchantRepo.On("GetByID", ctx, merchantID).Return(&entities.Merchant{
			ID:         merchantID,
			ReferredBy: uuid.NullUUID{UUID: uuid.New(), Valid: true},
		}, nil)

		// Even a code that resolves to nobody is a conflict, not a bad request
		for _, code := range []string{"hustler", "ghost"} {
			err := u.ConnectMarketer(ctx, merchantID, entities.ConnectMarketerInput{ReferrerCode: code})
			requireAppError(t, err, http.StatusConflict, "ALREADY_REFERRED")
		}
		marketerRepo.AssertNotCalled(t, "GetByUsername", ctx, "hustler")
		marketerRepo.AssertNotCalled(t, "GetByUsername", ctx, "ghost")
	})

	t.Run("lost race against a concurrent connect", func(t *testing.T) {
		u, merchantRepo, _, marketerRepo := newMerchantUsecase(t)

		merchantID := uuid.New()
		marketerID := uuid.New()
		merchantRepo.On("GetByID", ctx, merchantID).Return(&entities.Merchant{ID: merchantID}, nil)
		marketerRepo.On("GetByUsername", ctx, "hustler").Return(&entities.Marketer{ID: marketerID, Verified: true}, nil)
		merchantRepo.On("SetReferrer", ctx, merchantID, marketerID).Return(domainerrors.ErrAlreadyReferred)

		err := u.ConnectMarketer(ctx, merchantID, entities.ConnectMarketerInput{ReferrerCode: "hustler"})
		requireAppError(t, err, http.StatusConflict, "ALREADY_REFERRED")
	})
}

func TestConnectMarketer_UnknownCode(t *testing.T) {
	u, merchantRepo, _, marketerRepo := newMerchantUsecase(t)
	ctx := context.Background()

	merchantID := uuid.New()
	merchantRepo.On("GetByID", ctx, merchantID).Return(&entities.Merchant{ID: merchantID}, nil)
	marketerRepo.On("GetByUsername", ctx, "ghost").Return(nil, domainerrors.ErrNotFound)

	err := u.ConnectMarketer(ctx, merchantID, entities.ConnectMarketerInput{ReferrerCode: "ghost"})
	requireAppError(t, err, http.StatusBadRequest, "BAD_REQUEST")
}

func TestJoinAndLeaveMarket(t *testing.T) {
	u, merchantRepo, marketRepo, _ := newMerchantUsecase(t)
	ctx := context.Background()

	merchantID := uuid.New()
	marketID := uuid.New()
	marketRepo.On("GetByID", ctx, marketID).Return(&entities.Market{ID: marketID}, nil)
	merchantRepo.On("SetMarket", ctx, merchantID, uuid.NullUUID{UUID: marketID, Valid: true}).Return(nil)
	merchantRepo.On("SetMarket", ctx, merchantID, uuid.NullUUID{}).Return(nil)

	require.NoError(t, u.JoinMarket(ctx, merchantID, entities.JoinMarketInput{MarketID: marketID}))
	require.NoError(t, u.LeaveMarket(ctx, merchantID))
	merchantRepo.AssertExpectations(t)
}

func TestJoinMarket_UnknownMarket(t *testing.T) {
	u, merchantRepo, marketRepo, _ := newMerchantUsecase(t)
	ctx := context.Background()

	marketID := uuid.New()
	marketRepo.On("GetByID", ctx, marketID).Return(nil, domainerrors.ErrNotFound)

	err := u.JoinMarket(ctx, uuid.New(), entities.JoinMarketInput{MarketID: marketID})
	requireAppError(t, err, http.StatusNotFound, "NOT_FOUND")
	merchantRepo.AssertNotCalled(t, "SetMarket", ctx, uuid.Nil, uuid.NullUUID{})
}
