package usecases

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/payments"
	"soko.backend/internal/domain/repositories"
	"soko.backend/pkg/crypto"
	"soko.backend/pkg/logger"
)

// AdUsecase handles the ad lifecycle: free activation, paid checkout,
// payment verification with referral credit, and engagement tracking.
type AdUsecase struct {
	adRepo       repositories.AdRepository
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
	txnRepo      repositories.TransactionRepository
	earningsRepo repositories.EarningsRepository
	gateway      payments.Gateway
	uow          repositories.UnitOfWork
}

// NewAdUsecase creates a new ad usecase
func NewAdUsecase(
	adRepo repositories.AdRepository,
	productRepo repositories.ProductRepository,
	merchantRepo repositories.MerchantRepository,
	txnRepo repositories.TransactionRepository,
	earningsRepo repositories.EarningsRepository,
	gateway payments.Gateway,
	uow repositories.UnitOfWork,
) *AdUsecase {
	return &AdUsecase{
		adRepo:       adRepo,
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		txnRepo:      txnRepo,
		earningsRepo: earningsRepo,
		gateway:      gateway,
		uow:          uow,
	}
}

// ActivateFreeAd creates a level-0 ad for the merchant's product. Fails
// when the product already carries a live ad.
func (u *AdUsecase) ActivateFreeAd(ctx context.Context, merchantID, productID uuid.UUID) (*entities.Ad, error) {
	if err := u.checkOwnership(ctx, merchantID, productID); err != nil {
		return nil, err
	}
	if err := u.ensureNoLiveAd(ctx, productID); err != nil {
		return nil, err
	}

	now := time.Now()
	ad := &entities.Ad{
		ID:        uuid.New(),
		ProductID: productID,
		Level:     entities.AdLevelFree,
		PaidFor:   false,
		Status:    entities.AdStatusActive,
		ExpiresAt: now.Add(freeAdDuration),
	}
	if err := u.adRepo.Create(ctx, ad); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Free ad activated",
		zap.String("ad_id", ad.ID.String()),
		zap.String("product_id", productID.String()))
	return ad, nil
}

// InitializeAdPayment opens a gateway checkout session for a paid ad and
// records a pending transaction keyed by the reference.
func (u *AdUsecase) InitializeAdPayment(ctx context.Context, merchantID uuid.UUID, level int, productID uuid.UUID) (*entities.AdInitResponse, error) {
	if !validAdLevel(level) {
		return nil, domainerrors.BadRequest("invalid ad level, paid levels are 1 to 3")
	}
	if err := u.checkOwnership(ctx, merchantID, productID); err != nil {
		return nil, err
	}
	if err := u.ensureNoLiveAd(ctx, productID); err != nil {
		return nil, err
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	price, _ := AdPrice(level)

	suffix, err := crypto.GenerateRandomToken(12)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	reference := "ad_" + suffix

	initResult, err := u.gateway.Initialize(ctx, payments.InitRequest{
		Email:     merchant.Email,
		Amount:    price,
		Reference: reference,
		Metadata: map[string]string{
			"productId": productID.String(),
			"level":     strconv.Itoa(level),
		},
	})
	if err != nil {
		return nil, domainerrors.Upstream("payment gateway unavailable", domainerrors.ErrGatewayUnavailable)
	}

	txn := &entities.Transaction{
		ID:         uuid.New(),
		Reference:  initResult.Reference,
		MerchantID: merchantID,
		ProductID:  productID,
		AdLevel:    level,
		Amount:     price,
		Status:     entities.TransactionPending,
	}
	if err := u.txnRepo.Create(ctx, txn); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Ad payment initialized",
		zap.String("reference", txn.Reference),
		zap.Int("level", level),
		zap.Int64("amount", price))

	return &entities.AdInitResponse{
		Reference:        initResult.Reference,
		AuthorizationURL: initResult.AuthorizationURL,
		AccessCode:       initResult.AccessCode,
		Amount:           price,
		Level:            level,
	}, nil
}

// VerifyAdPayment confirms a payment with the gateway. On success the
// paid ad is created and, when the merchant was referred, the marketer
// is credited, all in one transaction. Re-verifying a settled reference
// is idempotent.
func (u *AdUsecase) VerifyAdPayment(ctx context.Context, merchantID uuid.UUID, reference string) (*entities.AdVerifyResponse, error) {
	txn, err := u.txnRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("unknown payment reference")
		}
		return nil, domainerrors.InternalError(err)
	}
	if txn.MerchantID != merchantID {
		return nil, domainerrors.Forbidden("payment belongs to another merchant")
	}

	if txn.Status == entities.TransactionSettled {
		ad, err := u.adRepo.GetLiveByProduct(ctx, txn.ProductID, time.Now())
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		return &entities.AdVerifyResponse{
			Reference: reference,
			Status:    payments.StatusSuccess,
			Ad:        ad,
		}, nil
	}

	result, err := u.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, domainerrors.Upstream("payment gateway unavailable", domainerrors.ErrGatewayUnavailable)
	}

	switch result.Status {
	case payments.StatusSuccess:
		ad, err := u.settlePayment(ctx, txn)
		if err != nil {
			return nil, err
		}
		return &entities.AdVerifyResponse{
			Reference: reference,
			Status:    payments.StatusSuccess,
			Ad:        ad,
		}, nil

	case payments.StatusPending:
		return &entities.AdVerifyResponse{
			Reference: reference,
			Status:    payments.StatusPending,
		}, nil

	default:
		if err := u.txnRepo.MarkFailed(ctx, reference); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		return nil, domainerrors.NewAppError(http.StatusPaymentRequired, "PAYMENT_FAILED",
			"payment was not successful", domainerrors.ErrPaymentFailed)
	}
}

// TrackView bumps an ad's view counter
func (u *AdUsecase) TrackView(ctx context.Context, adID uuid.UUID) error {
	if err := u.adRepo.IncrementViews(ctx, adID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("ad not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// TrackClick bumps an ad's click counter
func (u *AdUsecase) TrackClick(ctx context.Context, adID uuid.UUID) error {
	if err := u.adRepo.IncrementClicks(ctx, adID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("ad not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// List returns a page of ads, live ones only unless filter.All is set
func (u *AdUsecase) List(ctx context.Context, filter entities.AdFilter, limit, offset int) ([]*entities.Ad, int64, error) {
	ads, total, err := u.adRepo.List(ctx, filter, time.Now(), limit, offset)
	if err != nil {
		return nil, 0, domainerrors.InternalError(err)
	}
	return ads, total, nil
}

// settlePayment settles the transaction, supersedes any live ad on the
// product, creates the paid ad and credits the referring marketer. The
// settle guard on the pending status makes concurrent verifies safe.
func (u *AdUsecase) settlePayment(ctx context.Context, txn *entities.Transaction) (*entities.Ad, error) {
	now := time.Now()
	duration, _ := AdDuration(txn.AdLevel)

	var ad *entities.Ad
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.txnRepo.Settle(ctx, txn.Reference, now); err != nil {
			return err
		}

		if live, err := u.adRepo.GetLiveByProduct(ctx, txn.ProductID, now); err == nil {
			live.Status = entities.AdStatusExpired
			live.ExpiresAt = now
			if err := u.adRepo.Update(ctx, live); err != nil {
				return err
			}
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		ad = &entities.Ad{
			ID:        uuid.New(),
			ProductID: txn.ProductID,
			Level:     txn.AdLevel,
			PaidFor:   true,
			Status:    entities.AdStatusActive,
			ExpiresAt: now.Add(duration),
		}
		if err := u.adRepo.Create(ctx, ad); err != nil {
			return err
		}

		merchant, err := u.merchantRepo.GetByID(ctx, txn.MerchantID)
		if err != nil {
			return err
		}
		if merchant.ReferredBy.Valid {
			earning := &entities.MarketerEarning{
				ID:         uuid.New(),
				MarketerID: merchant.ReferredBy.UUID,
				MerchantID: merchant.ID,
				AdID:       ad.ID,
				Amount:     ReferralCommission(txn.Amount),
			}
			if err := u.earningsRepo.Create(ctx, earning); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// A lost settle race means another verify already credited it.
		if errors.Is(err, domainerrors.ErrNotFound) {
			existing, gerr := u.adRepo.GetLiveByProduct(ctx, txn.ProductID, now)
			if gerr == nil {
				return existing, nil
			}
		}
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Ad payment verified",
		zap.String("reference", txn.Reference),
		zap.String("ad_id", ad.ID.String()),
		zap.Int("level", txn.AdLevel))
	return ad, nil
}

func (u *AdUsecase) checkOwnership(ctx context.Context, merchantID, productID uuid.UUID) error {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("product not found")
		}
		return domainerrors.InternalError(err)
	}
	if product.MerchantID != merchantID {
		return domainerrors.Forbidden("product belongs to another merchant")
	}
	return nil
}

func (u *AdUsecase) ensureNoLiveAd(ctx context.Context, productID uuid.UUID) error {
	_, err := u.adRepo.GetLiveByProduct(ctx, productID, time.Now())
	if err == nil {
		return domainerrors.NewAppError(http.StatusConflict, "ACTIVE_AD_EXISTS",
			"product already has an active ad", domainerrors.ErrActiveAdExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.InternalError(err)
	}
	return nil
}
