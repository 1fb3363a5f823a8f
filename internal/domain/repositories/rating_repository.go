package repositories

import (
	"context"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// RatingRepository defines rating data operations
type RatingRepository interface {
	// Upsert creates the rating or updates the existing one for the same
	// (customer, product) pair.
	Upsert(ctx context.Context, rating *entities.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Rating, error)
	Delete(ctx context.Context, id, customerID uuid.UUID) error
	ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entities.Rating, int64, error)
}
