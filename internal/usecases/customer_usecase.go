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

// CustomerUsecase handles customer profile operations
type CustomerUsecase struct {
	customerRepo repositories.CustomerRepository
	addressRepo  repositories.AddressRepository
}

// NewCustomerUsecase creates a new customer usecase
func NewCustomerUsecase(customerRepo repositories.CustomerRepository, addressRepo repositories.AddressRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo, addressRepo: addressRepo}
}

// GetProfile returns the customer's profile with addresses
func (u *CustomerUsecase) GetProfile(ctx context.Context, customerID uuid.UUID) (*entities.CustomerProfile, error) {
	customer, err := u.loadWithAddresses(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return customer.Profile(), nil
}

// UpdateProfile applies partial profile updates
func (u *CustomerUsecase) UpdateProfile(ctx context.Context, customerID uuid.UUID, input entities.CustomerUpdateInput) (*entities.CustomerProfile, error) {
	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("customer not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if input.Name != "" {
		customer.Name = input.Name
	}
	if input.Phone1 != "" {
		customer.Phone1 = input.Phone1
	}
	if input.Phone2 != "" {
		customer.Phone2 = null.StringFrom(input.Phone2)
	}

	if err := u.customerRepo.Update(ctx, customer); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return u.GetProfile(ctx, customerID)
}

// AddAddress attaches a delivery address to the customer
func (u *CustomerUsecase) AddAddress(ctx context.Context, customerID uuid.UUID, input entities.AddressInput) (*entities.Address, error) {
	if _, err := u.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("customer not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	address := &entities.Address{
		ID:        uuid.New(),
		OwnerID:   customerID,
		OwnerType: entities.AccountCustomer,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		Country:   input.Country,
	}
	if err := u.addressRepo.Create(ctx, address); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return address, nil
}

// DeleteAddress removes one of the customer's addresses
func (u *CustomerUsecase) DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	if err := u.addressRepo.Delete(ctx, addressID, customerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("address not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// DeleteAccount removes the customer account together with its addresses
// and cart lines
func (u *CustomerUsecase) DeleteAccount(ctx context.Context, customerID uuid.UUID) error {
	if err := u.customerRepo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("customer not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *CustomerUsecase) loadWithAddresses(ctx context.Context, customerID uuid.UUID) (*entities.Customer, error) {
	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("customer not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	addresses, err := u.addressRepo.ListByOwner(ctx, customerID, entities.AccountCustomer)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	customer.Addresses = addresses
	return customer, nil
}
