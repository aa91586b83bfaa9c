package redisstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prasetya/tasklist-api/internal/domain/repository"
)

// CachedSessionRegistry fronts the authoritative registry with a redis
// read-through cache so the auth gate does not hit Postgres on every
// request. The cache holds only token validity: key is the user id plus the
// SHA-256 of the token (never the raw token), value is the purpose.
//
// Remove deletes the cache entry in the same call that deletes the row, so
// revocation takes effect immediately; the TTL only bounds staleness if a
// delete is lost.
type CachedSessionRegistry struct {
	inner repository.SessionRegistry
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedSessionRegistry(inner repository.SessionRegistry, rdb *redis.Client, ttl time.Duration) *CachedSessionRegistry {
	return &CachedSessionRegistry{inner: inner, rdb: rdb, ttl: ttl}
}

func sessionKey(userID, token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + userID + ":" + hex.EncodeToString(sum[:])
}

func (c *CachedSessionRegistry) Add(ctx context.Context, userID, purpose, token string) error {
	if err := c.inner.Add(ctx, userID, purpose, token); err != nil {
		return err
	}
	// Best effort: a failed cache write only costs one extra DB read later.
	_ = c.rdb.Set(ctx, sessionKey(userID, token), purpose, c.ttl).Err()
	return nil
}

func (c *CachedSessionRegistry) Remove(ctx context.Context, userID, token string) error {
	if err := c.inner.Remove(ctx, userID, token); err != nil {
		return err
	}
	return c.rdb.Del(ctx, sessionKey(userID, token)).Err()
}

func (c *CachedSessionRegistry) IsValid(ctx context.Context, userID, purpose, token string) (bool, error) {
	key := sessionKey(userID, token)
	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		return v == purpose, nil
	}
	ok, err := c.inner.IsValid(ctx, userID, purpose, token)
	if err != nil {
		return false, err
	}
	if ok {
		_ = c.rdb.Set(ctx, key, purpose, c.ttl).Err()
	}
	return ok, nil
}

var _ repository.SessionRegistry = (*CachedSessionRegistry)(nil)
