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

// MarketRepository implements market data operations
type MarketRepository struct {
	db *gorm.DB
}

// NewMarketRepository creates a new market repository
func NewMarketRepository(db *gorm.DB) *MarketRepository {
	return &MarketRepository{db: db}
}

// Create creates a new market
func (r *MarketRepository) Create(ctx context.Context, market *entities.Market) error {
	m := &models.Market{
		ID:        market.ID,
		Name:      market.Name,
		Street:    market.Street,
		City:      market.City,
		State:     market.State,
		IsMall:    market.IsMall,
		CreatedAt: market.CreatedAt,
		UpdatedAt: market.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a market by ID
func (r *MarketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Market, error) {
	var m models.Market
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByName gets a market by name
func (r *MarketRepository) GetByName(ctx context.Context, name string) (*entities.Market, error) {
	var m models.Market
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates a market
func (r *MarketRepository) Update(ctx context.Context, market *entities.Market) error {
	updates := map[string]interface{}{
		"name":       market.Name,
		"street":     market.Street,
		"city":       market.City,
		"state":      market.State,
		"is_mall":    market.IsMall,
		"updated_at": time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Market{}).Where("id = ?", market.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a market
func (r *MarketRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Market{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists markets ordered by name
func (r *MarketRepository) List(ctx context.Context, limit, offset int) ([]*entities.Market, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Market{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Market
	query := db.Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	markets := make([]*entities.Market, 0, len(rows))
	for i := range rows {
		markets = append(markets, r.toEntity(&rows[i]))
	}
	return markets, total, nil
}

// Count counts markets
func (r *MarketRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Market{}).Count(&n).Error
	return n, err
}

func (r *MarketRepository) toEntity(m *models.Market) *entities.Market {
	return &entities.Market{
		ID:        m.ID,
		Name:      m.Name,
		Street:    m.Street,
		City:      m.City,
		State:     m.State,
		IsMall:    m.IsMall,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
