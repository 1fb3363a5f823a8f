package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("refresh token not found")

const refreshKeyPrefix = "refresh:"

// TokenStore keeps issued refresh tokens server-side so they can be
// revoked on logout or password reset. A refresh token is only honored
// while its key is present.
type TokenStore struct {
	ttl time.Duration
}

// NewTokenStore creates a refresh token store with the given TTL
func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{ttl: ttl}
}

// Save records a refresh token for the subject
func (s *TokenStore) Save(ctx context.Context, subjectID uuid.UUID, token string) error {
	return Set(ctx, s.key(subjectID, token), "1", s.ttl)
}

// Validate checks that the refresh token is still live
func (s *TokenStore) Validate(ctx context.Context, subjectID uuid.UUID, token string) error {
	_, err := Get(ctx, s.key(subjectID, token))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrTokenNotFound
		}
		return err
	}
	return nil
}

// Revoke removes a single refresh token
func (s *TokenStore) Revoke(ctx context.Context, subjectID uuid.UUID, token string) error {
	return Del(ctx, s.key(subjectID, token))
}

// RevokeAll removes every refresh token for the subject
func (s *TokenStore) RevokeAll(ctx context.Context, subjectID uuid.UUID) error {
	return DelPattern(ctx, refreshKeyPrefix+subjectID.String()+":*")
}

func (s *TokenStore) key(subjectID uuid.UUID, token string) string {
	return fmt.Sprintf("%s%s:%s", refreshKeyPrefix, subjectID.String(), token)
}
