package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/repositories"
)

// CartUsecase handles customer cart operations
type CartUsecase struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartUsecase creates a new cart usecase
func NewCartUsecase(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, productRepo: productRepo}
}

// Update upserts the cart line for a product. Quantity 0 removes the
// line; otherwise totalPrice is derived from the product's current price.
func (u *CartUsecase) Update(ctx context.Context, customerID uuid.UUID, input entities.CartUpdateInput) (*entities.CartItem, error) {
	if input.Quantity == 0 {
		if err := u.cartRepo.DeleteLine(ctx, customerID, input.ProductID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		return nil, nil
	}

	product, err := u.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if input.Quantity > product.Stock {
		return nil, domainerrors.NewAppError(http.StatusConflict, "INSUFFICIENT_STOCK",
			"requested quantity exceeds available stock", domainerrors.ErrInsufficientStock)
	}

	item := &entities.CartItem{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		TotalPrice: int64(input.Quantity) * product.Price,
	}
	if err := u.cartRepo.Upsert(ctx, item); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	line, err := u.cartRepo.GetLine(ctx, customerID, input.ProductID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return line, nil
}

// List returns the customer's cart lines with products attached
func (u *CartUsecase) List(ctx context.Context, customerID uuid.UUID) ([]*entities.CartItem, error) {
	items, err := u.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// RemoveLine deletes a single cart line
func (u *CartUsecase) RemoveLine(ctx context.Context, customerID, productID uuid.UUID) error {
	if err := u.cartRepo.DeleteLine(ctx, customerID, productID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("cart line not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// Clear empties the customer's cart
func (u *CartUsecase) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := u.cartRepo.DeleteAll(ctx, customerID); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}
