package repositories

import (
	"context"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByEmail(ctx context.Context, email string) (*entities.Merchant, error)
	GetByBrandName(ctx context.Context, brandName string) (*entities.Merchant, error)
	Update(ctx context.Context, merchant *entities.Merchant) error
	SetMarket(ctx context.Context, id uuid.UUID, marketID uuid.NullUUID) error
	// SetReferrer attaches a marketer to a merchant. It only succeeds when
	// referred_by is still null; otherwise ErrAlreadyReferred.
	SetReferrer(ctx context.Context, id, marketerID uuid.UUID) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	ListByMarket(ctx context.Context, marketID uuid.UUID, limit, offset int) ([]*entities.Merchant, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
