package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pathway-infinity/pathway-api/database"
	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "pathway:revoked:"

// RevokedTokenRepository remembers session token ids that were logged out
// before they expired.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Enabled() bool
}

type redisRevokedTokenRepository struct {
	client *database.RedisClient
}

// NewRevokedTokenRepository falls back to a no-op store when Redis is not
// configured.
func NewRevokedTokenRepository(client *database.RedisClient) RevokedTokenRepository {
	if client == nil {
		return noopRevokedTokenRepository{}
	}
	return &redisRevokedTokenRepository{client: client}
}

func (r *redisRevokedTokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err()
}

func (r *redisRevokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Client.Get(ctx, revokedTokenPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisRevokedTokenRepository) Enabled() bool { return true }

type noopRevokedTokenRepository struct{}

func (noopRevokedTokenRepository) Revoke(context.Context, string, time.Duration) error { return nil }
func (noopRevokedTokenRepository) IsRevoked(context.Context, string) (bool, error)    { return false, nil }
func (noopRevokedTokenRepository) Enabled() bool                                      { return false }
