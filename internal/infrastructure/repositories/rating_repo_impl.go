package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/infrastructure/models"
)

// RatingRepository implements rating data operations
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert creates or updates the rating for the (customer, product) pair
func (r *RatingRepository) Upsert(ctx context.Context, rating *entities.Rating) error {
	m := &models.Rating{
		ID:         rating.ID,
		CustomerID: rating.CustomerID,
		ProductID:  rating.ProductID,
		Stars:      rating.Stars,
		Review:     rating.Review.Ptr(),
		CreatedAt:  rating.CreatedAt,
		UpdatedAt:  rating.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "review", "updated_at"}),
	}).Create(m).Error
}

// GetByID gets a rating by ID
func (r *RatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Rating, error) {
	var m models.Rating
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Delete removes a rating owned by the customer
func (r *RatingRepository) Delete(ctx context.Context, id, customerID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByProduct lists a product's ratings, newest first
func (r *RatingRepository) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entities.Rating, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Rating{}).Where("product_id = ?", productID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Rating
	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	ratings := make([]*entities.Rating, 0, len(rows))
	for i := range rows {
		ratings = append(ratings, r.toEntity(&rows[i]))
	}
	return ratings, total, nil
}

func (r *RatingRepository) toEntity(m *models.Rating) *entities.Rating {
	return &entities.Rating{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		Stars:      m.Stars,
		Review:     null.StringFromPtr(m.Review),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
