package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/infrastructure/models"
)

// MarketerRepository implements marketer profile data operations
type MarketerRepository struct {
	db *gorm.DB
}

// NewMarketerRepository creates a new marketer repository
func NewMarketerRepository(db *gorm.DB) *MarketerRepository {
	return &MarketerRepository{db: db}
}

// Create creates a new marketer profile
func (r *MarketerRepository) Create(ctx context.Context, marketer *entities.Marketer) error {
	m := &models.Marketer{
		ID:            marketer.ID,
		CustomerID:    marketer.CustomerID,
		Username:      marketer.Username,
		Verified:      marketer.Verified,
		BankName:      marketer.BankName,
		AccountName:   marketer.AccountName,
		AccountNumber: marketer.AccountNumber,
		CreatedAt:     marketer.CreatedAt,
		UpdatedAt:     marketer.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a marketer by ID
func (r *MarketerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Marketer, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByCustomerID gets the marketer profile held by a customer
func (r *MarketerRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*entities.Marketer, error) {
	return r.getBy(ctx, "customer_id = ?", customerID)
}

// GetByUsername resolves a referrer code
func (r *MarketerRepository) GetByUsername(ctx context.Context, username string) (*entities.Marketer, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *MarketerRepository) getBy(ctx context.Context, query string, arg interface{}) (*entities.Marketer, error) {
	var m models.Marketer
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// SetVerified updates the verification flag
func (r *MarketerRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Marketer{}).Where("id = ?", id).
		Updates(map[string]interface{}{"verified": verified, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Update updates payout details
func (r *MarketerRepository) Update(ctx context.Context, marketer *entities.Marketer) error {
	updates := map[string]interface{}{
		"bank_name":      marketer.BankName,
		"account_name":   marketer.AccountName,
		"account_number": marketer.AccountNumber,
		"updated_at":     time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Marketer{}).Where("id = ?", marketer.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a marketer profile
func (r *MarketerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Marketer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MarketerRepository) toEntity(m *models.Marketer) *entities.Marketer {
	return &entities.Marketer{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		Username:      m.Username,
		Verified:      m.Verified,
		BankName:      m.BankName,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// EarningsRepository implements marketer earnings data operations
type EarningsRepository struct {
	db *gorm.DB
}

// NewEarningsRepository creates a new earnings repository
func NewEarningsRepository(db *gorm.DB) *EarningsRepository {
	return &EarningsRepository{db: db}
}

// Create appends an earning. The unique index on ad_id rejects a second
// earning for the same ad.
func (r *EarningsRepository) Create(ctx context.Context, earning *entities.MarketerEarning) error {
	m := &models.MarketerEarning{
		ID:         earning.ID,
		MarketerID: earning.MarketerID,
		MerchantID: earning.MerchantID,
		AdID:       earning.AdID,
		Amount:     earning.Amount,
		Paid:       earning.Paid,
		CreatedAt:  earning.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByAd gets the earning generated by an ad
func (r *EarningsRepository) GetByAd(ctx context.Context, adID uuid.UUID) (*entities.MarketerEarning, error) {
	var m models.MarketerEarning
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("ad_id = ?", adID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.earningToEntity(&m), nil
}

// ListByMarketer lists a marketer's earnings, optionally filtered by paid
// state, newest first
func (r *EarningsRepository) ListByMarketer(ctx context.Context, marketerID uuid.UUID, paid *bool) ([]entities.MarketerEarning, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Where("marketer_id = ?", marketerID)
	if paid != nil {
		db = db.Where("paid = ?", *paid)
	}

	var rows []models.MarketerEarning
	if err := db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	earnings := make([]entities.MarketerEarning, 0, len(rows))
	for i := range rows {
		earnings = append(earnings, *r.earningToEntity(&rows[i]))
	}
	return earnings, nil
}

// MarkAllPaid flips every unpaid earning of the marketer to paid
func (r *EarningsRepository) MarkAllPaid(ctx context.Context, marketerID uuid.UUID, paidAt time.Time) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MarketerEarning{}).
		Where("marketer_id = ? AND paid = ?", marketerID, false).
		Updates(map[string]interface{}{"paid": true, "paid_at": paidAt})
	return result.RowsAffected, result.Error
}

// SumUnpaid totals outstanding earnings across all marketers
func (r *EarningsRepository) SumUnpaid(ctx context.Context) (int64, error) {
	var sum int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MarketerEarning{}).
		Where("paid = ?", false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *EarningsRepository) earningToEntity(m *models.MarketerEarning) *entities.MarketerEarning {
	return &entities.MarketerEarning{
		ID:         m.ID,
		MarketerID: m.MarketerID,
		MerchantID: m.MerchantID,
		AdID:       m.AdID,
		Amount:     m.Amount,
		Paid:       m.Paid,
		PaidAt:     null.TimeFromPtr(m.PaidAt),
		CreatedAt:  m.CreatedAt,
	}
}
