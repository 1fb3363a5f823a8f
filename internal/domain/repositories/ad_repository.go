package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// AdRepository defines ad data operations
type AdRepository interface {
	Create(ctx context.Context, ad *entities.Ad) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Ad, error)
	// GetLiveByProduct returns the product's unexpired ad, ErrNotFound if
	// none exists.
	GetLiveByProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*entities.Ad, error)
	Update(ctx context.Context, ad *entities.Ad) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementClicks(ctx context.Context, id uuid.UUID) error
	// List orders by level descending then recency. Unless filter.All is
	// set, only ads with expires_at after now are returned.
	List(ctx context.Context, filter entities.AdFilter, now time.Time, limit, offset int) ([]*entities.Ad, int64, error)
	// ExpireDue flips status to EXPIRED on ads past their expiry and
	// returns the number of rows touched.
	ExpireDue(ctx context.Context, now time.Time, limit int) (int64, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
}
