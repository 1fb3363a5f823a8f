package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/repositories"
	"soko.backend/pkg/logger"
)

// MarketerUsecase handles the referral program: marketer profiles,
// earnings reporting and payouts.
type MarketerUsecase struct {
	marketerRepo repositories.MarketerRepository
	earningsRepo repositories.EarningsRepository
	customerRepo repositories.CustomerRepository
	uow          repositories.UnitOfWork
}

// NewMarketerUsecase creates a new marketer usecase
func NewMarketerUsecase(
	marketerRepo repositories.MarketerRepository,
	earningsRepo repositories.EarningsRepository,
	customerRepo repositories.CustomerRepository,
	uow repositories.UnitOfWork,
) *MarketerUsecase {
	return &MarketerUsecase{
		marketerRepo: marketerRepo,
		earningsRepo: earningsRepo,
		customerRepo: customerRepo,
		uow:          uow,
	}
}

// Register upgrades a customer to a marketer. The username becomes the
// referrer code merchants use.
func (u *MarketerUsecase) Register(ctx context.Context, customerID uuid.UUID, input entities.MarketerRegisterInput) (*entities.Marketer, error) {
	if _, err := u.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("customer not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if _, err := u.marketerRepo.GetByCustomerID(ctx, customerID); err == nil {
		return nil, domainerrors.Conflict("customer already has a marketer profile")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	if _, err := u.marketerRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.Conflict("username already taken")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	marketer := &entities.Marketer{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Username:      input.Username,
		Verified:      false,
		BankName:      input.BankName,
		AccountName:   input.AccountName,
		AccountNumber: input.AccountNumber,
	}

	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.marketerRepo.Create(ctx, marketer); err != nil {
			return err
		}
		return u.customerRepo.UpdateRole(ctx, customerID, entities.RoleMarketer)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("username already taken")
		}
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Marketer registered",
		zap.String("marketer_id", marketer.ID.String()),
		zap.String("username", marketer.Username))
	return marketer, nil
}

// GetByCustomer returns the marketer profile owned by a customer
func (u *MarketerUsecase) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*entities.Marketer, error) {
	marketer, err := u.marketerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("marketer profile not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return marketer, nil
}

// SetVerified flips a marketer's verification flag
func (u *MarketerUsecase) SetVerified(ctx context.Context, marketerID uuid.UUID, verified bool) error {
	if err := u.marketerRepo.SetVerified(ctx, marketerID, verified); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("marketer not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// Earnings returns the marketer's earnings, optionally filtered by paid
// state, with totals
func (u *MarketerUsecase) Earnings(ctx context.Context, customerID uuid.UUID, paid *bool) (*entities.EarningsSummary, error) {
	marketer, err := u.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	earnings, err := u.earningsRepo.ListByMarketer(ctx, marketer.ID, paid)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	all := earnings
	if paid != nil {
		all, err = u.earningsRepo.ListByMarketer(ctx, marketer.ID, nil)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
	}

	summary := &entities.EarningsSummary{Earnings: earnings}
	for _, e := range all {
		summary.TotalEarned += e.Amount
		if !e.Paid {
			summary.TotalUnpaid += e.Amount
		}
	}
	return summary, nil
}

// Payout marks every unpaid earning of the marketer as paid and returns
// the number of earnings settled
func (u *MarketerUsecase) Payout(ctx context.Context, marketerID uuid.UUID) (int64, error) {
	if _, err := u.marketerRepo.GetByID(ctx, marketerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return 0, domainerrors.NotFound("marketer not found")
		}
		return 0, domainerrors.InternalError(err)
	}

	n, err := u.earningsRepo.MarkAllPaid(ctx, marketerID, time.Now())
	if err != nil {
		return 0, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Marketer paid out",
		zap.String("marketer_id", marketerID.String()),
		zap.Int64("earnings", n))
	return n, nil
}
