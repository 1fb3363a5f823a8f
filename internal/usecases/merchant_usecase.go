package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/repositories"
)

// MerchantUsecase handles merchant profile and market membership
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
	marketRepo   repositories.MarketRepository
	marketerRepo repositories.MarketerRepository
	addressRepo  repositories.AddressRepository
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	marketRepo repositories.MarketRepository,
	marketerRepo repositories.MarketerRepository,
	addressRepo repositories.AddressRepository,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo: merchantRepo,
		marketRepo:   marketRepo,
		marketerRepo: marketerRepo,
		addressRepo:  addressRepo,
	}
}

// GetProfile returns the merchant's profile with addresses
func (u *MerchantUsecase) GetProfile(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantProfile, error) {
	merchant, err := u.loadWithAddresses(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return merchant.Profile(), nil
}

// UpdateProfile applies partial profile updates
func (u *MerchantUsecase) UpdateProfile(ctx context.Context, merchantID uuid.UUID, input entities.MerchantUpdateInput) (*entities.MerchantProfile, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("merchant not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if input.BrandName != "" {
		merchant.BrandName = input.BrandName
	}
	if input.Phone1 != "" {
		merchant.Phone1 = input.Phone1
	}
	if input.Phone2 != "" {
		merchant.Phone2 = null.StringFrom(input.Phone2)
	}

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("brand name already taken")
		}
		return nil, domainerrors.InternalError(err)
	}

	return u.GetProfile(ctx, merchantID)
}

// JoinMarket places the merchant in a market
func (u *MerchantUsecase) JoinMarket(ctx context.Context, merchantID uuid.UUID, input entities.JoinMarketInput) error {
	if _, err := u.marketRepo.GetByID(ctx, input.MarketID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("market not found")
		}
		return domainerrors.InternalError(err)
	}

	if err := u.merchantRepo.SetMarket(ctx, merchantID, uuid.NullUUID{UUID: input.MarketID, Valid: true}); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("merchant not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// LeaveMarket removes the merchant from its market
func (u *MerchantUsecase) LeaveMarket(ctx context.Context, merchantID uuid.UUID) error {
	if err := u.merchantRepo.SetMarket(ctx, merchantID, uuid.NullUUID{}); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("merchant not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// ConnectMarketer attaches a verified marketer as the merchant's referrer.
// A referrer can only ever be set once; a second attempt is a conflict no
// matter what code it carries.
func (u *MerchantUsecase) ConnectMarketer(ctx context.Context, merchantID uuid.UUID, input entities.ConnectMarketerInput) error {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("merchant not found")
		}
		return domainerrors.InternalError(err)
	}
	if merchant.ReferredBy.Valid {
		return domainerrors.NewAppError(http.StatusConflict, "ALREADY_REFERRED", "merchant already has a referrer", domainerrors.ErrAlreadyReferred)
	}

	marketer, err := u.marketerRepo.GetByUsername(ctx, input.ReferrerCode)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest("unknown referrer code")
		}
		return domainerrors.InternalError(err)
	}
	if !marketer.Verified {
		return domainerrors.NewAppError(http.StatusForbidden, "MARKETER_UNVERIFIED", "referrer is not a verified marketer", domainerrors.ErrMarketerUnverified)
	}

	if err := u.merchantRepo.SetReferrer(ctx, merchantID, marketer.ID); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrAlreadyReferred):
			return domainerrors.NewAppError(http.StatusConflict, "ALREADY_REFERRED", "merchant already has a referrer", domainerrors.ErrAlreadyReferred)
		case errors.Is(err, domainerrors.ErrNotFound):
			return domainerrors.NotFound("merchant not found")
		default:
			return domainerrors.InternalError(err)
		}
	}
	return nil
}

// AddAddress attaches a business address to the merchant
func (u *MerchantUsecase) AddAddress(ctx context.Context, merchantID uuid.UUID, input entities.AddressInput) (*entities.Address, error) {
	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("merchant not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	address := &entities.Address{
		ID:        uuid.New(),
		OwnerID:   merchantID,
		OwnerType: entities.AccountMerchant,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		Country:   input.Country,
	}
	if err := u.addressRepo.Create(ctx, address); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return address, nil
}

// DeleteAddress removes one of the merchant's addresses
func (u *MerchantUsecase) DeleteAddress(ctx context.Context, merchantID, addressID uuid.UUID) error {
	if err := u.addressRepo.Delete(ctx, addressID, merchantID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("address not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// DeleteAccount soft deletes the merchant account
func (u *MerchantUsecase) DeleteAccount(ctx context.Context, merchantID uuid.UUID) error {
	if err := u.merchantRepo.SoftDelete(ctx, merchantID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("merchant not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *MerchantUsecase) loadWithAddresses(ctx context.Context, merchantID uuid.UUID) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("merchant not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	addresses, err := u.addressRepo.ListByOwner(ctx, merchantID, entities.AccountMerchant)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	merchant.Addresses = addresses
	return merchant, nil
}
