package repositories

import (
	"context"
	"time"

	"soko.backend/internal/domain/entities"
)

// TransactionRepository defines payment transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entities.Transaction) error
	GetByReference(ctx context.Context, reference string) (*entities.Transaction, error)
	Settle(ctx context.Context, reference string, settledAt time.Time) error
	MarkFailed(ctx context.Context, reference string) error
	List(ctx context.Context, limit, offset int) ([]*entities.Transaction, int64, error)
	SumSettled(ctx context.Context) (int64, error)
}
