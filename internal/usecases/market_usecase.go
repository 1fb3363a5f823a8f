package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/repositories"
)

// MarketUsecase handles market and mall management
type MarketUsecase struct {
	marketRepo   repositories.MarketRepository
	merchantRepo repositories.MerchantRepository
}

// NewMarketUsecase creates a new market usecase
func NewMarketUsecase(marketRepo repositories.MarketRepository, merchantRepo repositories.MerchantRepository) *MarketUsecase {
	return &MarketUsecase{marketRepo: marketRepo, merchantRepo: merchantRepo}
}

// Create registers a market or mall
func (u *MarketUsecase) Create(ctx context.Context, input entities.MarketCreateInput) (*entities.Market, error) {
	if _, err := u.marketRepo.GetByName(ctx, input.Name); err == nil {
		return nil, domainerrors.Conflict("a market with this name already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	market := &entities.Market{
		ID:     uuid.New(),
		Name:   input.Name,
		Street: input.Street,
		City:   input.City,
		State:  input.State,
		IsMall: input.IsMall,
	}
	if err := u.marketRepo.Create(ctx, market); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("a market with this name already exists")
		}
		return nil, domainerrors.InternalError(err)
	}
	return market, nil
}

// Get returns a single market
func (u *MarketUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Market, error) {
	market, err := u.marketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("market not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return market, nil
}

// Update applies partial updates to a market
func (u *MarketUsecase) Update(ctx context.Context, id uuid.UUID, input entities.MarketUpdateInput) (*entities.Market, error) {
	market, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		market.Name = input.Name
	}
	if input.Street != "" {
		market.Street = input.Street
	}
	if input.City != "" {
		market.City = input.City
	}
	if input.State != "" {
		market.State = input.State
	}
	if input.IsMall != nil {
		market.IsMall = *input.IsMall
	}

	if err := u.marketRepo.Update(ctx, market); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("a market with this name already exists")
		}
		return nil, domainerrors.InternalError(err)
	}
	return market, nil
}

// Delete soft deletes a market
func (u *MarketUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.marketRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("market not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// List returns a page of markets
func (u *MarketUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Market, int64, error) {
	markets, total, err := u.marketRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.InternalError(err)
	}
	return markets, total, nil
}

// ListMerchants returns a page of merchants trading in a market
func (u *MarketUsecase) ListMerchants(ctx context.Context, marketID uuid.UUID, limit, offset int) ([]*entities.MerchantProfile, int64, error) {
	if _, err := u.Get(ctx, marketID); err != nil {
		return nil, 0, err
	}

	merchants, total, err := u.merchantRepo.ListByMarket(ctx, marketID, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.InternalError(err)
	}

	profiles := make([]*entities.MerchantProfile, 0, len(merchants))
	for _, m := range merchants {
		profiles = append(profiles, m.Profile())
	}
	return profiles, total, nil
}
