package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProductCategory represents product categories
type ProductCategory string

const (
	CategoryFashion     ProductCategory = "fashion"
	CategoryElectronics ProductCategory = "electronics"
	CategoryGroceries   ProductCategory = "groceries"
	CategoryHome        ProductCategory = "home"
	CategoryBeauty      ProductCategory = "beauty"
	CategoryOther       ProductCategory = "other"
)

// ValidCategory reports whether c is a known category
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryFashion, CategoryElectronics, CategoryGroceries,
		CategoryHome, CategoryBeauty, CategoryOther:
		return true
	}
	return false
}

// Product represents a merchant's product. Prices are in minor currency
// units (kobo).
type Product struct {
	ID            uuid.UUID       `json:"id"`
	MerchantID    uuid.UUID       `json:"merchantId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         int64           `json:"price"`
	PreviousPrice null.Int64      `json:"previousPrice,omitempty"`
	Stock         int             `json:"stock"`
	Category      ProductCategory `json:"category"`
	Images        []ProductImage  `json:"images,omitempty"`
	Ratings       []Rating        `json:"ratings,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     null.Time       `json:"-"`
}

// ProductImage represents an uploaded product image
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	URL       string    `json:"url"`
	IsDisplay bool      `json:"isDisplay"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductCreateInput represents input for creating a product
type ProductCreateInput struct {
	Name        string          `json:"name" binding:"required,min=2,max=255"`
	Description string          `json:"description" binding:"required,min=2"`
	Price       int64           `json:"price" binding:"required,gt=0"`
	Stock       int             `json:"stock" binding:"gte=0"`
	Category    ProductCategory `json:"category" binding:"required"`
}

// ProductUpdateInput represents input for updating a product
type ProductUpdateInput struct {
	Name        string          `json:"name" binding:"omitempty,min=2,max=255"`
	Description string          `json:"description" binding:"omitempty,min=2"`
	Price       *int64          `json:"price,omitempty" binding:"omitempty,gt=0"`
	Stock       *int            `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Category    ProductCategory `json:"category" binding:"omitempty"`
}

// ProductFilter narrows product listings
type ProductFilter struct {
	MerchantID uuid.NullUUID
	MarketID   uuid.NullUUID
	Category   ProductCategory
	Search     string
}
