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

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	m := &models.Merchant{
		ID:           merchant.ID,
		Email:        merchant.Email,
		BrandName:    merchant.BrandName,
		PasswordHash: merchant.PasswordHash,
		Phone1:       merchant.Phone1,
		Phone2:       merchant.Phone2.Ptr(),
		MarketID:     uuidPtr(merchant.MarketID),
		ReferredBy:   uuidPtr(merchant.ReferredBy),
		CreatedAt:    merchant.CreatedAt,
		UpdatedAt:    merchant.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a merchant by ID
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByEmail gets a merchant by email
func (r *MerchantRepository) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	return r.getBy(ctx, "email = ?", email)
}

// GetByBrandName gets a merchant by brand name
func (r *MerchantRepository) GetByBrandName(ctx context.Context, brandName string) (*entities.Merchant, error) {
	return r.getBy(ctx, "brand_name = ?", brandName)
}

func (r *MerchantRepository) getBy(ctx context.Context, query string, arg interface{}) (*entities.Merchant, error) {
	var m models.Merchant
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates profile fields
func (r *MerchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	updates := map[string]interface{}{
		"brand_name": merchant.BrandName,
		"phone1":     merchant.Phone1,
		"phone2":     merchant.Phone2.Ptr(),
		"updated_at": time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", merchant.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetMarket joins or leaves a market
func (r *MerchantRepository) SetMarket(ctx context.Context, id uuid.UUID, marketID uuid.NullUUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", id).
		Updates(map[string]interface{}{"market_id": uuidPtr(marketID), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetReferrer attaches a marketer, only while referred_by is still null.
// The guarded WHERE keeps the referrer immutable even under concurrent
// calls.
func (r *MerchantRepository) SetReferrer(ctx context.Context, id, marketerID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ? AND referred_by IS NULL", id).
		Updates(map[string]interface{}{"referred_by": marketerID, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish missing merchant from one that is already referred.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domainerrors.ErrAlreadyReferred
	}
	return nil
}

// MarkEmailVerified stamps the verification timestamp
func (r *MerchantRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ? AND email_verified_at IS NULL", id).
		Update("email_verified_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetPassword replaces the password hash
func (r *MerchantRepository) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", id).
		Updates(map[string]interface{}{"password_hash": passwordHash, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMarket lists merchants belonging to a market
func (r *MerchantRepository) ListByMarket(ctx context.Context, marketID uuid.UUID, limit, offset int) ([]*entities.Merchant, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{}).Where("market_id = ?", marketID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Merchant
	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	merchants := make([]*entities.Merchant, 0, len(rows))
	for i := range rows {
		merchants = append(merchants, r.toEntity(&rows[i]))
	}
	return merchants, total, nil
}

// SoftDelete soft deletes a merchant
func (r *MerchantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Merchant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count counts merchants
func (r *MerchantRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{}).Count(&n).Error
	return n, err
}

func (r *MerchantRepository) toEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:              m.ID,
		Email:           m.Email,
		BrandName:       m.BrandName,
		PasswordHash:    m.PasswordHash,
		Phone1:          m.Phone1,
		Phone2:          null.StringFromPtr(m.Phone2),
		MarketID:        nullUUID(m.MarketID),
		ReferredBy:      nullUUID(m.ReferredBy),
		EmailVerifiedAt: null.TimeFromPtr(m.EmailVerifiedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
