package repositories

import (
	"context"

	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
)

// TokenPurpose distinguishes the one-time tokens mailed to accounts
type TokenPurpose string

const (
	PurposeVerifyEmail   TokenPurpose = "verify_email"
	PurposeResetPassword TokenPurpose = "reset_password"
)

// AuthTokenRepository defines one-time token operations for email
// verification and password resets
type AuthTokenRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, ownerType entities.AccountType, purpose TokenPurpose, token string) error
	// Consume resolves an unexpired, unused token to its owner and marks
	// it used. ErrNotFound for unknown, expired or already-used tokens.
	Consume(ctx context.Context, token string, purpose TokenPurpose) (uuid.UUID, entities.AccountType, error)
}
