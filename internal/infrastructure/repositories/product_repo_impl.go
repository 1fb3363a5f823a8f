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

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := &models.Product{
		ID:            product.ID,
		MerchantID:    product.MerchantID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		PreviousPrice: product.PreviousPrice.Ptr(),
		Stock:         product.Stock,
		Category:      string(product.Category),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a product with images and ratings preloaded
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Images").
		Preload("Ratings").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates a product. Previous price is kept automatically when
// the price changes.
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"category":    string(product.Category),
		"updated_at":  time.Now(),
	}
	if product.PreviousPrice.Valid {
		updates["previous_price"] = product.PreviousPrice.Int64
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a product
func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists products with optional filters, newest first
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter, limit, offset int) ([]*entities.Product, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{})

	if filter.MerchantID.Valid {
		db = db.Where("products.merchant_id = ?", filter.MerchantID.UUID)
	}
	if filter.MarketID.Valid {
		db = db.Joins("JOIN merchants ON merchants.id = products.merchant_id").
			Where("merchants.market_id = ?", filter.MarketID.UUID)
	}
	if filter.Category != "" {
		db = db.Where("products.category = ?", string(filter.Category))
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		db = db.Where("products.name LIKE ? OR products.description LIKE ?", term, term)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Product
	query := db.Preload("Images").Order("products.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, 0, len(rows))
	for i := range rows {
		products = append(products, r.toEntity(&rows[i]))
	}
	return products, total, nil
}

// AddImages attaches uploaded images to a product
func (r *ProductRepository) AddImages(ctx context.Context, productID uuid.UUID, images []entities.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	rows := make([]models.ProductImage, 0, len(images))
	for _, img := range images {
		rows = append(rows, models.ProductImage{
			ID:        img.ID,
			ProductID: productID,
			URL:       img.URL,
			IsDisplay: img.IsDisplay,
			CreatedAt: img.CreatedAt,
		})
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(&rows).Error
}

// Count counts products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	p := &entities.Product{
		ID:            m.ID,
		MerchantID:    m.MerchantID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		PreviousPrice: null.Int64FromPtr(m.PreviousPrice),
		Stock:         m.Stock,
		Category:      entities.ProductCategory(m.Category),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	for _, img := range m.Images {
		p.Images = append(p.Images, entities.ProductImage{
			ID:        img.ID,
			ProductID: img.ProductID,
			URL:       img.URL,
			IsDisplay: img.IsDisplay,
			CreatedAt: img.CreatedAt,
		})
	}
	for _, rt := range m.Ratings {
		p.Ratings = append(p.Ratings, entities.Rating{
			ID:         rt.ID,
			CustomerID: rt.CustomerID,
			ProductID:  rt.ProductID,
			Stars:      rt.Stars,
			Review:     null.StringFromPtr(rt.Review),
			CreatedAt:  rt.CreatedAt,
			UpdatedAt:  rt.UpdatedAt,
		})
	}
	return p
}
