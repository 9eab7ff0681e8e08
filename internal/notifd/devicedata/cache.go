package devicedata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

const (
	cacheKey = "devicedata:latest"
	cacheTTL = 5 * time.Minute
)

// Cache keeps the latest sample in Redis so every server instance and a
// freshly started one serve the same reading.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Redis-backed sample cache.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Store writes the sample, replacing the previous one.
func (c *Cache) Store(ctx context.Context, data types.DeviceData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal device data: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
		return fmt.Errorf("store device data: %w", err)
	}
	return nil
}

// Latest returns the cached sample. The second return is false when no
// sample has been stored yet or the entry expired.
func (c *Cache) Latest(ctx context.Context) (types.DeviceData, bool, error) {
	payload, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return types.DeviceData{}, false, nil
	}
	if err != nil {
		return types.DeviceData{}, false, fmt.Errorf("load device data: %w", err)
	}

	var data types.DeviceData
	if err := json.Unmarshal(payload, &data); err != nil {
		return types.DeviceData{}, false, fmt.Errorf("unmarshal device data: %w", err)
	}
	return data, true, nil
}
