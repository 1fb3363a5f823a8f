package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/repositories"
)

// RatingUsecase handles product ratings
type RatingUsecase struct {
	ratingRepo  repositories.RatingRepository
	productRepo repositories.ProductRepository
}

// NewRatingUsecase creates a new rating usecase
func NewRatingUsecase(ratingRepo repositories.RatingRepository, productRepo repositories.ProductRepository) *RatingUsecase {
	return &RatingUsecase{ratingRepo: ratingRepo, productRepo: productRepo}
}

// Rate creates or replaces the customer's rating of a product
func (u *RatingUsecase) Rate(ctx context.Context, customerID uuid.UUID, input entities.RatingInput) (*entities.Rating, error) {
	if input.Stars < 1 || input.Stars > 5 {
		return nil, domainerrors.BadRequest("stars must be between 1 and 5")
	}

	if _, err := u.productRepo.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	rating := &entities.Rating{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  input.ProductID,
		Stars:      input.Stars,
		Review:     null.NewString(input.Review, input.Review != ""),
	}
	if err := u.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return rating, nil
}

// Delete removes the customer's own rating
func (u *RatingUsecase) Delete(ctx context.Context, customerID, ratingID uuid.UUID) error {
	if err := u.ratingRepo.Delete(ctx, ratingID, customerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("rating not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// ListByProduct returns a page of a product's ratings
func (u *RatingUsecase) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entities.Rating, int64, error) {
	ratings, total, err := u.ratingRepo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.InternalError(err)
	}
	return ratings, total, nil
}
