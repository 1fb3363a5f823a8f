package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	domainRepos "soko.backend/internal/domain/repositories"
	"soko.backend/internal/infrastructure/models"
)

const tokenTTL = 24 * time.Hour

// AuthTokenRepository implements one-time token operations
type AuthTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository creates a new auth token repository
func NewAuthTokenRepository(db *gorm.DB) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

// Create stores a one-time token
func (r *AuthTokenRepository) Create(ctx context.Context, ownerID uuid.UUID, ownerType entities.AccountType, purpose domainRepos.TokenPurpose, token string) error {
	m := &models.AuthToken{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerType: string(ownerType),
		Purpose:   string(purpose),
		Token:     token,
		ExpiresAt: time.Now().Add(tokenTTL),
		CreatedAt: time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// Consume resolves and invalidates a token
func (r *AuthTokenRepository) Consume(ctx context.Context, token string, purpose domainRepos.TokenPurpose) (uuid.UUID, entities.AccountType, error) {
	var m models.AuthToken
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("token = ? AND purpose = ? AND expires_at > ? AND used_at IS NULL", token, string(purpose), time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", domainerrors.ErrNotFound
		}
		return uuid.Nil, "", err
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.AuthToken{}).
		Where("id = ? AND used_at IS NULL", m.ID).
		Update("used_at", time.Now())
	if result.Error != nil {
		return uuid.Nil, "", result.Error
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, "", domainerrors.ErrNotFound
	}

	return m.OwnerID, entities.AccountType(m.OwnerType), nil
}
