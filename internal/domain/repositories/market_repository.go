package repositories

import (
	"context"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// MarketRepository defines market data operations
type MarketRepository interface {
	Create(ctx context.Context, market *entities.Market) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Market, error)
	GetByName(ctx context.Context, name string) (*entities.Market, error)
	Update(ctx context.Context, market *entities.Market) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entities.Market, int64, error)
	Count(ctx context.Context) (int64, error)
}
