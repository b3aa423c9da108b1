package admin

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"Backend-Yeoun-Survey/src/models"
)

const (
	statsCacheKey = "admin:song-stats"
	statsCacheTTL = time.Hour
)

// ReportCache holds the last computed admin report. Load returns (nil, nil)
// on a miss.
type ReportCache interface {
	Load(ctx context.Context) (*models.AdminReport, error)
	Save(ctx context.Context, report *models.AdminReport) error
	Clear(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
}

func NewRedisReportCache(client *redis.Client) ReportCache {
	return &redisReportCache{client: client}
}

func (c *redisReportCache) Load(ctx context.Context) (*models.AdminReport, error) {
	raw, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report models.AdminReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *redisReportCache) Save(ctx context.Context, report *models.AdminReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err()
}

func (c *redisReportCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, statsCacheKey).Err()
}

type memoryReportCache struct {
	mu     sync.RWMutex
	report *models.AdminReport
}

func NewMemoryReportCache() ReportCache {
	return &memoryReportCache{}
}

func (c *memoryReportCache) Load(context.Context) (*models.AdminReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report, nil
}

func (c *memoryReportCache) Save(_ context.Context, report *models.AdminReport) error {
	c.mu.Lock()
	c.report = report
	c.mu.Unlock()
	return nil
}

func (c *memoryReportCache) Clear(context.Context) error {
	c.mu.Lock()
	c.report = nil
	c.mu.Unlock()
	return nil
}
