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

// ProductUsecase handles product catalogue operations
type ProductUsecase struct {
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, merchantRepo repositories.MerchantRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo, merchantRepo: merchantRepo}
}

// Create adds a product to the merchant's catalogue
func (u *ProductUsecase) Create(ctx context.Context, merchantID uuid.UUID, input entities.ProductCreateInput) (*entities.Product, error) {
	if !entities.ValidCategory(input.Category) {
		return nil, domainerrors.BadRequest("unknown product category")
	}

	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("merchant not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	product := &entities.Product{
		ID:          uuid.New(),
		MerchantID:  merchantID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
	}
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return product, nil
}

// Get returns a product with images and ratings
func (u *ProductUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return product, nil
}

// Update applies partial updates to the merchant's product. A price
// change records the old price as previousPrice.
func (u *ProductUsecase) Update(ctx context.Context, merchantID, productID uuid.UUID, input entities.ProductUpdateInput) (*entities.Product, error) {
	product, err := u.getOwned(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != nil && *input.Price != product.Price {
		product.PreviousPrice = null.Int64From(product.Price)
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Category != "" {
		if !entities.ValidCategory(input.Category) {
			return nil, domainerrors.BadRequest("unknown product category")
		}
		product.Category = input.Category
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return product, nil
}

// Delete removes the merchant's product
func (u *ProductUsecase) Delete(ctx context.Context, merchantID, productID uuid.UUID) error {
	if _, err := u.getOwned(ctx, merchantID, productID); err != nil {
		return err
	}
	if err := u.productRepo.SoftDelete(ctx, productID); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// AddImages attaches uploaded images to the merchant's product. The
// first image of a product becomes its display image.
func (u *ProductUsecase) AddImages(ctx context.Context, merchantID, productID uuid.UUID, urls []string) (*entities.Product, error) {
	product, err := u.getOwned(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, domainerrors.BadRequest("no images provided")
	}

	images := make([]entities.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, entities.ProductImage{
			ID:        uuid.New(),
			ProductID: productID,
			URL:       url,
			IsDisplay: len(product.Images) == 0 && i == 0,
		})
	}

	if err := u.productRepo.AddImages(ctx, productID, images); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return u.Get(ctx, productID)
}

// List returns a filtered page of products
func (u *ProductUsecase) List(ctx context.Context, filter entities.ProductFilter, limit, offset int) ([]*entities.Product, int64, error) {
	if filter.Category != "" && !entities.ValidCategory(filter.Category) {
		return nil, 0, domainerrors.BadRequest("unknown product category")
	}

	products, total, err := u.productRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.InternalError(err)
	}
	return products, total, nil
}

func (u *ProductUsecase) getOwned(ctx context.Context, merchantID, productID uuid.UUID) (*entities.Product, error) {
	product, err := u.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.MerchantID != merchantID {
		return nil, domainerrors.Forbidden("product belongs to another merchant")
	}
	return product, nil
}
