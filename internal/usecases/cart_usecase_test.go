package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
)

func TestCartUpdate_DerivesTotalFromCurrentPrice(t *testing.T) {
	cartRepo := &mockCartRepo{}
	productRepo := &mockProductRepo{}
	u := NewCartUsecase(cartRepo, productRepo)
	ctx := context.Background()

	customerID := uuid.New()
	productID := uuid.New()

	productRepo.On("GetByID", ctx, productID).Return(&entities.Product{
		ID: productID, Price: 2_500_00, Stock: 10,
	}, nil)
	cartRepo.On("Upsert", ctx, mock.MatchedBy(func(item *entities.CartItem) bool {
		return item.CustomerID == customerID && item.Quantity == 3 && item.TotalPrice == 7_500_00
	})).Return(nil)
	cartRepo.On("GetLine", ctx, customerID, productID).Return(&entities.CartItem{
		CustomerID: customerID, ProductID: productID, Quantity: 3, TotalPrice: 7_500_00,
	}, nil)

	line, err := u.Update(ctx, customerID, entities.CartUpdateInput{ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	require.EqualValues(t, 7_500_00, line.TotalPrice)
	cartRepo.AssertExpectations(t)
}

func TestCartUpdate_QuantityZeroRemovesLine(t *testing.T) {
	cartRepo := &mockCartRepo{}
	productRepo := &mockProductRepo{}
	u := NewCartUsecase(cartRepo, productRepo)
	ctx := context.Background()

	customerID := uuid.New()
	productID := uuid.New()

	cartRepo.On("DeleteLine", ctx, customerID, productID).Return(nil)

	line, err := u.Update(ctx, customerID, entities.CartUpdateInput{ProductID: productID, Quantity: 0})
	require.NoError(t, err)
	require.Nil(t, line)
	productRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCartUpdate_RemovingMissingLineIsFine(t *testing.T) {
	cartRepo := &mockCartRepo{}
	u := NewCartUsecase(cartRepo, &mockProductRepo{})
	ctx := context.Background()

	customerID := uuid.New()
	productID := uuid.New()
	cartRepo.On("DeleteLine", ctx, customerID, productID).Return(domainerrors.ErrNotFound)

	_, err := u.Update(ctx, customerID, entities.CartUpdateInput{ProductID: productID, Quantity: 0})
	require.NoError(t, err)
}

func TestCartUpdate_RejectsOverStock(t *testing.T) {
	cartRepo := &mockCartRepo{}
	productRepo := &mockProductRepo{}
	u := NewCartUsecase(cartRepo, productRepo)
	ctx := context.Background()

	productID := uuid.New()
	productRepo.On("GetByID", ctx, productID).Return(&entities.Product{
		ID: productID, Price: 100, Stock: 2,
	}, nil)

	_, err := u.Update(ctx, uuid.New(), entities.CartUpdateInput{ProductID: productID, Quantity: 3})
	requireAppError(t, err, http.StatusConflict, "INSUFFICIENT_STOCK")
	cartRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCartUpdate_UnknownProduct(t *testing.T) {
	productRepo := &mockProductRepo{}
	u := NewCartUsecase(&mockCartRepo{}, productRepo)
	ctx := context.Background()

	productID := uuid.New()
	productRepo.On("GetByID", ctx, productID).Return(nil, domainerrors.ErrNotFound)

	_, err := u.Update(ctx, uuid.New(), entities.CartUpdateInput{ProductID: productID, Quantity: 1})
	requireAppError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestCartRemoveLine(t *testing.T) {
	cartRepo := &mockCartRepo{}
	u := NewCartUsecase(cartRepo, &mockProductRepo{})
	ctx := context.Background()

	customerID := uuid.New()
	productID := uuid.New()
	cartRepo.On("DeleteLine", ctx, customerID, productID).Return(nil).Once()

	require.NoError(t, u.RemoveLine(ctx, customerID, productID))

	cartRepo.On("DeleteLine", ctx, customerID, productID).Return(domainerrors.ErrNotFound)
	err := u.RemoveLine(ctx, customerID, productID)
	requireAppError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestCartClear(t *testing.T) {
	cartRepo := &mockCartRepo{}
	u := NewCartUsecase(cartRepo, &mockProductRepo{})
	ctx := context.Background()

	customerID := uuid.New()
	cartRepo.On("DeleteAll", ctx, customerID).Return(nil)

	require.NoError(t, u.Clear(ctx, customerID))
	cartRepo.AssertExpectations(t)
}
