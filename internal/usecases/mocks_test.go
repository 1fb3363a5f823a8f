package usecases

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"soko.backend/internal/domain/entities"
	"soko.backend/internal/domain/payments"
	domainRepos "soko.backend/internal/domain/repositories"
	"soko.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}

// fakeUnitOfWork runs the function directly; repository mocks see the
// same context they would inside a transaction.
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockAdRepo struct{ mock.Mock }

func (m *mockAdRepo) Create(ctx context.Context, ad *entities.Ad) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *mockAdRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Ad, error) {
	args := m.Called(ctx, id)
	ad, _ := args.Get(0).(*entities.Ad)
	return ad, args.Error(1)
}

func (m *mockAdRepo) GetLiveByProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*entities.Ad, error) {
	args := m.Called(ctx, productID, now)
	ad, _ := args.Get(0).(*entities.Ad)
	return ad, args.Error(1)
}

func (m *mockAdRepo) Update(ctx context.Context, ad *entities.Ad) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *mockAdRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAdRepo) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAdRepo) List(ctx context.Context, filter entities.AdFilter, now time.Time, limit, offset int) ([]*entities.Ad, int64, error) {
	args := m.Called(ctx, filter, now, limit, offset)
	ads, _ := args.Get(0).([]*entities.Ad)
	return ads, args.Get(1).(int64), args.Error(2)
}

func (m *mockAdRepo) ExpireDue(ctx context.Context, now time.Time, limit int) (int64, error) {
	args := m.Called(ctx, now, limit)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdRepo) CountActive(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entities.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) List(ctx context.Context, filter entities.ProductFilter, limit, offset int) ([]*entities.Product, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	products, _ := args.Get(0).([]*entities.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) AddImages(ctx context.Context, productID uuid.UUID, images []entities.ProductImage) error {
	return m.Called(ctx, productID, images).Error(0)
}

func (m *mockProductRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockMerchantRepo struct{ mock.Mock }

func (m *mockMerchantRepo) Create(ctx context.Context, merchant *entities.Merchant) error {
	return m.Called(ctx, merchant).Error(0)
}

func (m *mockMerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	args := m.Called(ctx, id)
	merchant, _ := args.Get(0).(*entities.Merchant)
	return merchant, args.Error(1)
}

func (m *mockMerchantRepo) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	args := m.Called(ctx, email)
	merchant, _ := args.Get(0).(*entities.Merchant)
	return merchant, args.Error(1)
}

func (m *mockMerchantRepo) GetByBrandName(ctx context.Context, brandName string) (*entities.Merchant, error) {
	args := m.Called(ctx, brandName)
	merchant, _ := args.Get(0).(*entities.Merchant)
	return merchant, args.Error(1)
}

func (m *mockMerchantRepo) Update(ctx context.Context, merchant *entities.Merchant) error {
	return m.Called(ctx, merchant).Error(0)
}

func (m *mockMerchantRepo) SetMarket(ctx context.Context, id uuid.UUID, marketID uuid.NullUUID) error {
	return m.Called(ctx, id, marketID).Error(0)
}

func (m *mockMerchantRepo) SetReferrer(ctx context.Context, id, marketerID uuid.UUID) error {
	return m.Called(ctx, id, marketerID).Error(0)
}

func (m *mockMerchantRepo) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMerchantRepo) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockMerchantRepo) ListByMarket(ctx context.Context, marketID uuid.UUID, limit, offset int) ([]*entities.Merchant, int64, error) {
	args := m.Called(ctx, marketID, limit, offset)
	merchants, _ := args.Get(0).([]*entities.Merchant)
	return merchants, args.Get(1).(int64), args.Error(2)
}

func (m *mockMerchantRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMerchantRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockTransactionRepo struct{ mock.Mock }

func (m *mockTransactionRepo) Create(ctx context.Context, txn *entities.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *mockTransactionRepo) GetByReference(ctx context.Context, reference string) (*entities.Transaction, error) {
	args := m.Called(ctx, reference)
	txn, _ := args.Get(0).(*entities.Transaction)
	return txn, args.Error(1)
}

func (m *mockTransactionRepo) Settle(ctx context.Context, reference string, settledAt time.Time) error {
	return m.Called(ctx, reference, settledAt).Error(0)
}

func (m *mockTransactionRepo) MarkFailed(ctx context.Context, reference string) error {
	return m.Called(ctx, reference).Error(0)
}

func (m *mockTransactionRepo) List(ctx context.Context, limit, offset int) ([]*entities.Transaction, int64, error) {
	args := m.Called(ctx, limit, offset)
	txns, _ := args.Get(0).([]*entities.Transaction)
	return txns, args.Get(1).(int64), args.Error(2)
}

func (m *mockTransactionRepo) SumSettled(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockEarningsRepo struct{ mock.Mock }

func (m *mockEarningsRepo) Create(ctx context.Context, earning *entities.MarketerEarning) error {
	return m.Called(ctx, earning).Error(0)
}

func (m *mockEarningsRepo) GetByAd(ctx context.Context, adID uuid.UUID) (*entities.MarketerEarning, error) {
	args := m.Called(ctx, adID)
	earning, _ := args.Get(0).(*entities.MarketerEarning)
	return earning, args.Error(1)
}

func (m *mockEarningsRepo) ListByMarketer(ctx context.Context, marketerID uuid.UUID, paid *bool) ([]entities.MarketerEarning, error) {
	args := m.Called(ctx, marketerID, paid)
	earnings, _ := args.Get(0).([]entities.MarketerEarning)
	return earnings, args.Error(1)
}

func (m *mockEarningsRepo) MarkAllPaid(ctx context.Context, marketerID uuid.UUID, paidAt time.Time) (int64, error) {
	args := m.Called(ctx, marketerID, paidAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEarningsRepo) SumUnpaid(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockMarketerRepo struct{ mock.Mock }

func (m *mockMarketerRepo) Create(ctx context.Context, marketer *entities.Marketer) error {
	return m.Called(ctx, marketer).Error(0)
}

func (m *mockMarketerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Marketer, error) {
	args := m.Called(ctx, id)
	marketer, _ := args.Get(0).(*entities.Marketer)
	return marketer, args.Error(1)
}

func (m *mockMarketerRepo) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*entities.Marketer, error) {
	args := m.Called(ctx, customerID)
	marketer, _ := args.Get(0).(*entities.Marketer)
	return marketer, args.Error(1)
}

func (m *mockMarketerRepo) GetByUsername(ctx context.Context, username string) (*entities.Marketer, error) {
	args := m.Called(ctx, username)
	marketer, _ := args.Get(0).(*entities.Marketer)
	return marketer, args.Error(1)
}

func (m *mockMarketerRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

func (m *mockMarketerRepo) Update(ctx context.Context, marketer *entities.Marketer) error {
	return m.Called(ctx, marketer).Error(0)
}

func (m *mockMarketerRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entities.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*entities.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepo) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	args := m.Called(ctx, email)
	customer, _ := args.Get(0).(*entities.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *entities.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entities.CustomerRole) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *mockCustomerRepo) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerRepo) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) Upsert(ctx context.Context, item *entities.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCartRepo) GetLine(ctx context.Context, customerID, productID uuid.UUID) (*entities.CartItem, error) {
	args := m.Called(ctx, customerID, productID)
	item, _ := args.Get(0).(*entities.CartItem)
	return item, args.Error(1)
}

func (m *mockCartRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.CartItem, error) {
	args := m.Called(ctx, customerID)
	items, _ := args.Get(0).([]*entities.CartItem)
	return items, args.Error(1)
}

func (m *mockCartRepo) DeleteLine(ctx context.Context, customerID, productID uuid.UUID) error {
	return m.Called(ctx, customerID, productID).Error(0)
}

func (m *mockCartRepo) DeleteAll(ctx context.Context, customerID uuid.UUID) error {
	return m.Called(ctx, customerID).Error(0)
}

type mockMarketRepo struct{ mock.Mock }

func (m *mockMarketRepo) Create(ctx context.Context, market *entities.Market) error {
	return m.Called(ctx, market).Error(0)
}

func (m *mockMarketRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Market, error) {
	args := m.Called(ctx, id)
	market, _ := args.Get(0).(*entities.Market)
	return market, args.Error(1)
}

func (m *mockMarketRepo) GetByName(ctx context.Context, name string) (*entities.Market, error) {
	args := m.Called(ctx, name)
	market, _ := args.Get(0).(*entities.Market)
	return market, args.Error(1)
}

func (m *mockMarketRepo) Update(ctx context.Context, market *entities.Market) error {
	return m.Called(ctx, market).Error(0)
}

func (m *mockMarketRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMarketRepo) List(ctx context.Context, limit, offset int) ([]*entities.Market, int64, error) {
	args := m.Called(ctx, limit, offset)
	markets, _ := args.Get(0).([]*entities.Market)
	return markets, args.Get(1).(int64), args.Error(2)
}

func (m *mockMarketRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) Create(ctx context.Context, address *entities.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, ownerType entities.AccountType) ([]entities.Address, error) {
	args := m.Called(ctx, ownerID, ownerType)
	addresses, _ := args.Get(0).([]entities.Address)
	return addresses, args.Error(1)
}

func (m *mockAddressRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) Initialize(ctx context.Context, req payments.InitRequest) (*payments.InitResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*payments.InitResult)
	return result, args.Error(1)
}

func (m *mockGateway) Verify(ctx context.Context, reference string) (*payments.VerifyResult, error) {
	args := m.Called(ctx, reference)
	result, _ := args.Get(0).(*payments.VerifyResult)
	return result, args.Error(1)
}

var _ domainRepos.UnitOfWork = fakeUnitOfWork{}
