package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/infrastructure/models"
)

// TransactionRepository implements payment transaction data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create records a payment attempt
func (r *TransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	m := &models.Transaction{
		ID:         txn.ID,
		Reference:  txn.Reference,
		MerchantID: txn.MerchantID,
		ProductID:  txn.ProductID,
		AdLevel:    txn.AdLevel,
		Amount:     txn.Amount,
		Status:     string(txn.Status),
		CreatedAt:  txn.CreatedAt,
		UpdatedAt:  txn.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByReference gets a transaction by its gateway reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("reference = ?", reference).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Settle marks a pending transaction settled. Only the pending→settled
// transition touches a row, which keeps re-verification idempotent.
func (r *TransactionRepository) Settle(ctx context.Context, reference string, settledAt time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("reference = ? AND status = ?", reference, string(entities.TransactionPending)).
		Updates(map[string]interface{}{
			"status":     string(entities.TransactionSettled),
			"settled_at": settledAt,
			"updated_at": settledAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkFailed marks a pending transaction failed
func (r *TransactionRepository) MarkFailed(ctx context.Context, reference string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("reference = ? AND status = ?", reference, string(entities.TransactionPending)).
		Updates(map[string]interface{}{"status": string(entities.TransactionFailed), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists transactions, newest first
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*entities.Transaction, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Transaction
	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	txns := make([]*entities.Transaction, 0, len(rows))
	for i := range rows {
		txns = append(txns, r.toEntity(&rows[i]))
	}
	return txns, total, nil
}

// SumSettled totals settled revenue
func (r *TransactionRepository) SumSettled(ctx context.Context) (int64, error) {
	var sum int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("status = ?", string(entities.TransactionSettled)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *TransactionRepository) toEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:         m.ID,
		Reference:  m.Reference,
		MerchantID: m.MerchantID,
		ProductID:  m.ProductID,
		AdLevel:    m.AdLevel,
		Amount:     m.Amount,
		Status:     entities.TransactionStatus(m.Status),
		SettledAt:  null.TimeFromPtr(m.SettledAt),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
