package usecases

import (
	"context"
	"time"

	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/repositories"
)

// StatsUsecase aggregates platform-wide figures for the admin dashboard
type StatsUsecase struct {
	customerRepo repositories.CustomerRepository
	merchantRepo repositories.MerchantRepository
	marketRepo   repositories.MarketRepository
	productRepo  repositories.ProductRepository
	adRepo       repositories.AdRepository
	txnRepo      repositories.TransactionRepository
	earningsRepo repositories.EarningsRepository
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(
	customerRepo repositories.CustomerRepository,
	merchantRepo repositories.MerchantRepository,
	marketRepo repositories.MarketRepository,
	productRepo repositories.ProductRepository,
	adRepo repositories.AdRepository,
	txnRepo repositories.TransactionRepository,
	earningsRepo repositories.EarningsRepository,
) *StatsUsecase {
	return &StatsUsecase{
		customerRepo: customerRepo,
		merchantRepo: merchantRepo,
		marketRepo:   marketRepo,
		productRepo:  productRepo,
		adRepo:       adRepo,
		txnRepo:      txnRepo,
		earningsRepo: earningsRepo,
	}
}

// Platform assembles the current platform stats
func (u *StatsUsecase) Platform(ctx context.Context) (*entities.PlatformStats, error) {
	stats := &entities.PlatformStats{}

	var err error
	if stats.Customers, err = u.customerRepo.Count(ctx); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.Merchants, err = u.merchantRepo.Count(ctx); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.Markets, err = u.marketRepo.Count(ctx); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.Products, err = u.productRepo.Count(ctx); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.ActiveAds, err = u.adRepo.CountActive(ctx, time.Now()); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.Revenue, err = u.txnRepo.SumSettled(ctx); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.EarningsLiability, err = u.earningsRepo.SumUnpaid(ctx); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return stats, nil
}

// Transactions returns a page of payment transactions
func (u *StatsUsecase) Transactions(ctx context.Context, limit, offset int) ([]*entities.Transaction, int64, error) {
	txns, total, err := u.txnRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.InternalError(err)
	}
	return txns, total, nil
}
