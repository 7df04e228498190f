// Package balance supplies wallet token balances to badge calculations.
// Balances come from an external source and are cached in Redis on a TTL
// cycle; the rest of the system never fetches balances directly.
package balance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// Source fetches a wallet's current token balance from an external system,
// typically a chain RPC or indexer.
type Source interface {
	FetchBalance(ctx context.Context, wallet string) (float64, error)
}

// Cache is a Redis-backed read-through cache over a balance Source.
type Cache struct {
	client rueidis.Client
	source Source
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache creates a new balance cache with the given entry lifetime.
func NewCache(client rueidis.Client, source Source, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger.Named("balance_cache"),
	}
}

// GetBalance returns the wallet's balance, serving from Redis within the TTL
// and refreshing from the source on a miss. Redis failures degrade to a
// direct source fetch rather than failing the lookup.
func (c *Cache) GetBalance(ctx context.Context, wallet string) (float64, error) {
	key := cacheKey(wallet)

	cached, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).ToString()
	if err == nil {
		balance, parseErr := strconv.ParseFloat(cached, 64)
		if parseErr == nil {
			return balance, nil
		}

		c.logger.Warn("Discarding unparseable cached balance",
			zap.String("wallet", wallet),
			zap.String("value", cached))
	} else if !rueidis.IsRedisNil(err) {
		c.logger.Warn("Balance cache read failed, fetching directly",
			zap.String("wallet", wallet),
			zap.Error(err))
	}

	balance, err := c.source.FetchBalance(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch balance for %s: %w", wallet, err)
	}

	setErr := c.client.Do(ctx, c.client.B().
		Set().
		Key(key).
		Value(strconv.FormatFloat(balance, 'f', -1, 64)).
		Ex(c.ttl).
		Build()).
		Error()
	if setErr != nil {
		c.logger.Warn("Failed to cache balance",
			zap.String("wallet", wallet),
			zap.Error(setErr))
	}

	return balance, nil
}

// Invalidate drops the cached balance for a wallet.
func (c *Cache) Invalidate(ctx context.Context, wallet string) error {
	err := c.client.Do(ctx, c.client.B().Del().Key(cacheKey(wallet)).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to invalidate balance for %s: %w", wallet, err)
	}

	return nil
}

func cacheKey(wallet string) string {
	return "balance:" + wallet
}
