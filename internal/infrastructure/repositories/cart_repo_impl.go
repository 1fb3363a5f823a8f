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

// CartRepository implements cart data operations
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Upsert creates or replaces the (customer, product) line
func (r *CartRepository) Upsert(ctx context.Context, item *entities.CartItem) error {
	m := &models.CartItem{
		ID:         item.ID,
		CustomerID: item.CustomerID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "total_price", "updated_at"}),
	}).Create(m).Error
}

// GetLine gets a single cart line
func (r *CartRepository) GetLine(ctx context.Context, customerID, productID uuid.UUID) (*entities.CartItem, error) {
	var m models.CartItem
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByCustomer lists cart lines with products preloaded
func (r *CartRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.CartItem, error) {
	var rows []models.CartItem
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Product").
		Preload("Product.Images").
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.CartItem, 0, len(rows))
	for i := range rows {
		items = append(items, r.toEntity(&rows[i]))
	}
	return items, nil
}

// DeleteLine removes a single cart line
func (r *CartRepository) DeleteLine(ctx context.Context, customerID, productID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteAll empties a customer's cart
func (r *CartRepository) DeleteAll(ctx context.Context, customerID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&models.CartItem{}).Error
}

func (r *CartRepository) toEntity(m *models.CartItem) *entities.CartItem {
	item := &entities.CartItem{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Product != nil {
		item.Product = &entities.Product{
			ID:            m.Product.ID,
			MerchantID:    m.Product.MerchantID,
			Name:          m.Product.Name,
			Description:   m.Product.Description,
			Price:         m.Product.Price,
			PreviousPrice: null.Int64FromPtr(m.Product.PreviousPrice),
			Stock:         m.Product.Stock,
			Category:      entities.ProductCategory(m.Product.Category),
			CreatedAt:     m.Product.CreatedAt,
			UpdatedAt:     m.Product.UpdatedAt,
		}
		for _, img := range m.Product.Images {
			item.Product.Images = append(item.Product.Images, entities.ProductImage{
				ID:        img.ID,
				ProductID: img.ProductID,
				URL:       img.URL,
				IsDisplay: img.IsDisplay,
				CreatedAt: img.CreatedAt,
			})
		}
	}
	return item
}
