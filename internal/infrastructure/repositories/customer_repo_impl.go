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

// CustomerRepository implements customer data operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	m := &models.Customer{
		ID:           customer.ID,
		Email:        customer.Email,
		Name:         customer.Name,
		Role:         string(customer.Role),
		PasswordHash: customer.PasswordHash,
		Phone1:       customer.Phone1,
		Phone2:       customer.Phone2.Ptr(),
		MarketerID:   uuidPtr(customer.MarketerID),
		CreatedAt:    customer.CreatedAt,
		UpdatedAt:    customer.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	var m models.Customer
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a customer by email
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	var m models.Customer
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates profile fields
func (r *CustomerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	updates := map[string]interface{}{
		"name":       customer.Name,
		"phone1":     customer.Phone1,
		"phone2":     customer.Phone2.Ptr(),
		"updated_at": time.Now(),
	}
	if customer.MarketerID.Valid {
		updates["marketer_id"] = customer.MarketerID.UUID
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateRole updates the customer's role
func (r *CustomerRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.CustomerRole) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).
		Updates(map[string]interface{}{"role": string(role), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkEmailVerified stamps the verification timestamp
func (r *CustomerRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{}).
		Where("id = ? AND email_verified_at IS NULL", id).
		Update("email_verified_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetPassword replaces the password hash
func (r *CustomerRepository) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).
		Updates(map[string]interface{}{"password_hash": passwordHash, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the customer and dependent rows (addresses, cart lines)
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if err := db.Where("owner_id = ? AND owner_type = ?", id, string(entities.AccountCustomer)).
		Delete(&models.Address{}).Error; err != nil {
		return err
	}
	return db.Where("customer_id = ?", id).Delete(&models.CartItem{}).Error
}

// Count counts customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{}).Count(&n).Error
	return n, err
}

func (r *CustomerRepository) toEntity(m *models.Customer) *entities.Customer {
	return &entities.Customer{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		Role:            entities.CustomerRole(m.Role),
		PasswordHash:    m.PasswordHash,
		Phone1:          m.Phone1,
		Phone2:          null.StringFromPtr(m.Phone2),
		MarketerID:      nullUUID(m.MarketerID),
		EmailVerifiedAt: null.TimeFromPtr(m.EmailVerifiedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// AddressRepository implements address data operations
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// Create creates a new address
func (r *AddressRepository) Create(ctx context.Context, address *entities.Address) error {
	m := &models.Address{
		ID:        address.ID,
		OwnerID:   address.OwnerID,
		OwnerType: string(address.OwnerType),
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		Country:   address.Country,
		CreatedAt: address.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListByOwner lists an account's addresses
func (r *AddressRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, ownerType entities.AccountType) ([]entities.Address, error) {
	var rows []models.Address
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID, string(ownerType)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]entities.Address, 0, len(rows))
	for _, m := range rows {
		addresses = append(addresses, entities.Address{
			ID:        m.ID,
			OwnerID:   m.OwnerID,
			OwnerType: entities.AccountType(m.OwnerType),
			Street:    m.Street,
			City:      m.City,
			State:     m.State,
			Country:   m.Country,
			CreatedAt: m.CreatedAt,
		})
	}
	return addresses, nil
}

// Delete removes an address owned by the given account
func (r *AddressRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Address{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
