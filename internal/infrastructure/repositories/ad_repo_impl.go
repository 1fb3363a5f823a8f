package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/infrastructure/models"
)

// AdRepository implements ad data operations
type AdRepository struct {
	db *gorm.DB
}

// NewAdRepository creates a new ad repository
func NewAdRepository(db *gorm.DB) *AdRepository {
	return &AdRepository{db: db}
}

// Create creates a new ad
func (r *AdRepository) Create(ctx context.Context, ad *entities.Ad) error {
	m := r.toModel(ad)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an ad by ID
func (r *AdRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Ad, error) {
	var m models.Ad
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetLiveByProduct returns the product's unexpired ad
func (r *AdRepository) GetLiveByProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*entities.Ad, error) {
	var m models.Ad
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("product_id = ? AND expires_at > ?", productID, now).
		Order("expires_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates an ad
func (r *AdRepository) Update(ctx context.Context, ad *entities.Ad) error {
	updates := map[string]interface{}{
		"level":      ad.Level,
		"paid_for":   ad.PaidFor,
		"status":     string(ad.Status),
		"expires_at": ad.ExpiresAt,
		"updated_at": time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Ad{}).Where("id = ?", ad.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter
func (r *AdRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.increment(ctx, id, "views")
}

// IncrementClicks bumps the click counter
func (r *AdRepository) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	return r.increment(ctx, id, "clicks")
}

func (r *AdRepository) increment(ctx context.Context, id uuid.UUID, column string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Ad{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists ads ordered by level descending then recency. Live-only by
// default; filter.All includes expired and pending ads.
func (r *AdRepository) List(ctx context.Context, filter entities.AdFilter, now time.Time, limit, offset int) ([]*entities.Ad, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Ad{})

	if filter.MerchantID.Valid || filter.MarketID.Valid {
		db = db.Joins("JOIN products ON products.id = ads.product_id")
	}
	if filter.MerchantID.Valid {
		db = db.Where("products.merchant_id = ?", filter.MerchantID.UUID)
	}
	if filter.MarketID.Valid {
		db = db.Joins("JOIN merchants ON merchants.id = products.merchant_id").
			Where("merchants.market_id = ?", filter.MarketID.UUID)
	}
	if !filter.All {
		db = db.Where("ads.status = ? AND ads.expires_at > ?", string(entities.AdStatusActive), now)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Ad
	query := db.Order("ads.level DESC, ads.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	ads := make([]*entities.Ad, 0, len(rows))
	for i := range rows {
		ads = append(ads, r.toEntity(&rows[i]))
	}
	return ads, total, nil
}

// ExpireDue flips status to EXPIRED on ads past their expiry
func (r *AdRepository) ExpireDue(ctx context.Context, now time.Time, limit int) (int64, error) {
	// Subquery keeps the sweep batched; SQLite and Postgres both accept
	// the IN form.
	sub := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Ad{}).
		Select("id").
		Where("status = ? AND expires_at <= ?", string(entities.AdStatusActive), now).
		Limit(limit)

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Ad{}).
		Where("id IN (?)", sub).
		Updates(map[string]interface{}{"status": string(entities.AdStatusExpired), "updated_at": now})
	return result.RowsAffected, result.Error
}

// CountActive counts currently live ads
func (r *AdRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Ad{}).
		Where("status = ? AND expires_at > ?", string(entities.AdStatusActive), now).
		Count(&n).Error
	return n, err
}

func (r *AdRepository) toModel(ad *entities.Ad) *models.Ad {
	return &models.Ad{
		ID:        ad.ID,
		ProductID: ad.ProductID,
		Level:     ad.Level,
		PaidFor:   ad.PaidFor,
		Status:    string(ad.Status),
		ExpiresAt: ad.ExpiresAt,
		Views:     ad.Views,
		Clicks:    ad.Clicks,
		CreatedAt: ad.CreatedAt,
		UpdatedAt: ad.UpdatedAt,
	}
}

func (r *AdRepository) toEntity(m *models.Ad) *entities.Ad {
	return &entities.Ad{
		ID:        m.ID,
		ProductID: m.ProductID,
		Level:     m.Level,
		PaidFor:   m.PaidFor,
		Status:    entities.AdStatus(m.Status),
		ExpiresAt: m.ExpiresAt,
		Views:     m.Views,
		Clicks:    m.Clicks,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
