package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shop/backend/internal/application/dashboard"
)

const summaryKey = "dashboard:summary"

// RedisDashboardCache caches dashboard rollups in Redis with a short
// TTL. The dashboard tolerates slightly stale numbers.
type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDashboardCache creates a new dashboard cache
func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) *RedisDashboardCache {
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &RedisDashboardCache{client: client, ttl: ttl}
}

// GetSummary returns the cached summary, or (nil, nil) on a miss
func (c *RedisDashboardCache) GetSummary(ctx context.Context) (*dashboard.SummaryResponse, error) {
	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var summary dashboard.SummaryResponse
	if err := json.Unmarshal(data, &summary); err != nil {
		// Treat a corrupt entry as a miss
		return nil, nil
	}
	return &summary, nil
}

// SetSummary stores the summary with the configured TTL
func (c *RedisDashboardCache) SetSummary(ctx context.Context, summary *dashboard.SummaryResponse) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

var _ dashboard.SummaryCache = (*RedisDashboardCache)(nil)
