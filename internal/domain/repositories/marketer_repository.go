package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// MarketerRepository defines marketer profile data operations
type MarketerRepository interface {
	Create(ctx context.Context, marketer *entities.Marketer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Marketer, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*entities.Marketer, error)
	GetByUsername(ctx context.Context, username string) (*entities.Marketer, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	Update(ctx context.Context, marketer *entities.Marketer) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// EarningsRepository defines marketer earnings data operations. Earnings
// are append-only facts; the only mutation is the payout marking.
type EarningsRepository interface {
	Create(ctx context.Context, earning *entities.MarketerEarning) error
	GetByAd(ctx context.Context, adID uuid.UUID) (*entities.MarketerEarning, error)
	ListByMarketer(ctx context.Context, marketerID uuid.UUID, paid *bool) ([]entities.MarketerEarning, error)
	// MarkAllPaid flips every unpaid earning of the marketer to paid,
	// stamping paidAt, and returns the number of rows touched.
	MarkAllPaid(ctx context.Context, marketerID uuid.UUID, paidAt time.Time) (int64, error)
	SumUnpaid(ctx context.Context) (int64, error)
}
