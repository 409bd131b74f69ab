package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/pkg/logger"
	pkgredis "github.com/jdvanegasm/proticket/pkg/redis"
)

const statsKeyPrefix = "proticket:event_stats:"

// cachedStats is the wire form stored in Redis. Availability is recomputed
// at read time from the event's current capacity, so only the aggregates
// are cached.
type cachedStats struct {
	TicketsSold int     `json:"tickets_sold"`
	Revenue     float64 `json:"revenue"`
}

// EventStatsCache caches per-event sales aggregates in Redis with a TTL.
// A nil cache is valid and turns every operation into a no-op, so the
// service degrades to direct SQL when Redis is disabled or unreachable.
type EventStatsCache struct {
	client *pkgredis.Client
	ttl    time.Duration
}

// NewEventStatsCache creates a stats cache backed by the given Redis client.
// Returns nil when the client is nil.
func NewEventStatsCache(client *pkgredis.Client, ttl time.Duration) *EventStatsCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &EventStatsCache{client: client, ttl: ttl}
}

func statsKey(eventID int64) string {
	return fmt.Sprintf("%s%d", statsKeyPrefix, eventID)
}

// Get returns the cached aggregates for an event, or (nil, false) on a miss.
// Redis failures are logged and treated as misses.
func (c *EventStatsCache) Get(ctx context.Context, eventID int64) (*domain.EventStats, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Client().Get(ctx, statsKey(eventID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Get().Warn("stats cache read failed",
				zap.Int64("event_id", eventID),
				zap.Error(err),
			)
		}
		return nil, false
	}

	var cached cachedStats
	if err := json.Unmarshal(raw, &cached); err != nil {
		logger.Get().Warn("stats cache entry corrupt, dropping",
			zap.Int64("event_id", eventID),
			zap.Error(err),
		)
		c.Invalidate(ctx, eventID)
		return nil, false
	}

	return &domain.EventStats{
		TicketsSold: cached.TicketsSold,
		Revenue:     cached.Revenue,
	}, true
}

// Set stores the aggregates for an event with the configured TTL
func (c *EventStatsCache) Set(ctx context.Context, eventID int64, stats *domain.EventStats) {
	if c == nil || stats == nil {
		return
	}

	raw, err := json.Marshal(cachedStats{
		TicketsSold: stats.TicketsSold,
		Revenue:     stats.Revenue,
	})
	if err != nil {
		return
	}

	if err := c.client.Client().Set(ctx, statsKey(eventID), raw, c.ttl).Err(); err != nil {
		logger.Get().Warn("stats cache write failed",
			zap.Int64("event_id", eventID),
			zap.Error(err),
		)
	}
}

// Invalidate drops the cached aggregates for an event. Called after any
// order mutation that changes what the aggregates would report.
func (c *EventStatsCache) Invalidate(ctx context.Context, eventID int64) {
	if c == nil {
		return
	}

	if err := c.client.Client().Del(ctx, statsKey(eventID)).Err(); err != nil {
		logger.Get().Warn("stats cache invalidation failed",
			zap.Int64("event_id", eventID),
			zap.Error(err),
		)
	}
}
