package repositories

import (
	"context"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	// GetByID returns the product with images and ratings preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.ProductFilter, limit, offset int) ([]*entities.Product, int64, error)
	AddImages(ctx context.Context, productID uuid.UUID, images []entities.ProductImage) error
	Count(ctx context.Context) (int64, error)
}
