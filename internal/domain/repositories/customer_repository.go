package repositories

import (
	"context"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// CustomerRepository defines customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entities.Customer, error)
	Update(ctx context.Context, customer *entities.Customer) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entities.CustomerRole) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// Delete removes the customer together with dependent addresses and
	// cart lines.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// AddressRepository defines address data operations shared by customers
// and merchants
type AddressRepository interface {
	Create(ctx context.Context, address *entities.Address) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, ownerType entities.AccountType) ([]entities.Address, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
