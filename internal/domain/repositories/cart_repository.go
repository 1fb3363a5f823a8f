package repositories

import (
	"context"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// CartRepository defines cart data operations
type CartRepository interface {
	// Upsert creates or replaces the (customer, product) line.
	Upsert(ctx context.Context, item *entities.CartItem) error
	GetLine(ctx context.Context, customerID, productID uuid.UUID) (*entities.CartItem, error)
	// ListByCustomer returns lines with products preloaded.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.CartItem, error)
	DeleteLine(ctx context.Context, customerID, productID uuid.UUID) error
	DeleteAll(ctx context.Context, customerID uuid.UUID) error
}
