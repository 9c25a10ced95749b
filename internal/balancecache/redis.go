// Package balancecache implements ledger.BalanceCache on Redis.
package balancecache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix           = "creditledger:balance:"
	generationKeyPrefix = "creditledger:balance-generation:"
	defaultTTL          = 30 * time.Second
	generationTTL       = 24 * time.Hour
)

const fillScript = `
local current = redis.call("GET", KEYS[1])
if (current or "0") ~= ARGV[1] then
  return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`

const invalidateScript = `
redis.call("INCR", KEYS[1])
redis.call("PEXPIRE", KEYS[1], ARGV[1])
redis.call("DEL", KEYS[2])
return 1
`

var (
	fillBalance     = redis.NewScript(fillScript)
	advanceBalances = redis.NewScript(invalidateScript)
)

// Client is the subset of *redis.Client used by the cache.
type Client interface {
	redis.Scripter
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisCache stores balances under short-lived keys guarded by a per-user generation.
type RedisCache struct {
	client Client
	ttl    time.Duration
}

// New returns a cache with ttl, or the default ttl when ttl <= 0.
func New(client Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr string, ttl time.Duration) (*RedisCache, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return New(client, ttl), client, nil
}

func balanceKey(userID ledger.UserID) string {
	return keyPrefix + userID.String()
}

func generationKey(userID ledger.UserID) string {
	return generationKeyPrefix + userID.String()
}

// GetBalance reports a cached balance; ok is false on a miss.
func (cache *RedisCache) GetBalance(ctx context.Context, userID ledger.UserID) (ledger.Credits, bool, error) {
	value, err := cache.client.Get(ctx, balanceKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get cached balance: %w", err)
	}
	return ledger.Credits(value), true, nil
}

// Generation returns the user's invalidation counter; a missing counter is zero.
func (cache *RedisCache) Generation(ctx context.Context, userID ledger.UserID) (int64, error) {
	value, err := cache.client.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get balance generation: %w", err)
	}
	return value, nil
}

// SetBalance caches balance for the configured ttl unless the generation moved past generation.
func (cache *RedisCache) SetBalance(ctx context.Context, userID ledger.UserID, balance ledger.Credits, generation int64) error {
	keys := []string{generationKey(userID), balanceKey(userID)}
	err := fillBalance.Run(ctx, cache.client, keys, strconv.FormatInt(generation, 10), balance.Int64(), cache.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("set cached balance: %w", err)
	}
	return nil
}

// Invalidate advances the generation and drops the cached balance.
func (cache *RedisCache) Invalidate(ctx context.Context, userID ledger.UserID) error {
	keys := []string{generationKey(userID), balanceKey(userID)}
	if err := advanceBalances.Run(ctx, cache.client, keys, generationTTL.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("invalidate cached balance: %w", err)
	}
	return nil
}
