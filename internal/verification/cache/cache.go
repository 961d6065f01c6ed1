// Package cache puts a short-TTL Redis cache in front of the address-metadata
// lookup. pxid records are immutable for practical purposes, so a hit saves an
// external round trip per duplicate submission. Cache trouble is never fatal:
// every failure falls through to the live lookup.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"loandraft/internal/verification"
	"loandraft/internal/verification/metrics"
)

// AddressLookup is the live client the cache wraps.
type AddressLookup interface {
	Lookup(ctx context.Context, pxid string) (*verification.AddressResult, error)
}

// AddressCache is a read-through cache over an AddressLookup.
type AddressCache struct {
	next    AddressLookup
	redis   redis.Cmdable
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New wraps next with a Redis cache. A nil redis client disables caching and
// passes every lookup straight through.
func New(next AddressLookup, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *AddressCache {
	return &AddressCache{next: next, redis: rdb, ttl: ttl, logger: logger, metrics: m}
}

// cachedAddress is the stored shape; RawPayload is carried explicitly because
// AddressResult excludes it from JSON.
type cachedAddress struct {
	Result     verification.AddressResult `json:"result"`
	RawPayload []byte                     `json:"rawPayload"`
}

func cacheKey(pxid string) string { return "addr:" + pxid }

// Lookup returns the cached record for pxid or falls through to the live
// service, caching a successful result. Negative results are not cached so a
// later retry can still resolve.
func (c *AddressCache) Lookup(ctx context.Context, pxid string) (*verification.AddressResult, error) {
	if c.redis != nil {
		if res := c.fromCache(ctx, pxid); res != nil {
			c.metrics.ObserveCache(true)
			return res, nil
		}
		c.metrics.ObserveCache(false)
	}

	res, err := c.next.Lookup(ctx, pxid)
	if err != nil || res == nil {
		return res, err
	}

	if c.redis != nil {
		c.store(ctx, pxid, res)
	}
	return res, nil
}

func (c *AddressCache) fromCache(ctx context.Context, pxid string) *verification.AddressResult {
	data, err := c.redis.Get(ctx, cacheKey(pxid)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "address cache read failed", "pxid", pxid, "error", err.Error())
		}
		return nil
	}

	var entry cachedAddress
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.WarnContext(ctx, "address cache entry corrupt", "pxid", pxid, "error", err.Error())
		return nil
	}
	entry.Result.RawPayload = entry.RawPayload
	return &entry.Result
}

func (c *AddressCache) store(ctx context.Context, pxid string, res *verification.AddressResult) {
	entry := cachedAddress{Result: *res, RawPayload: res.RawPayload}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(pxid), data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "address cache write failed", "pxid", pxid, "error", err.Error())
	}
}
