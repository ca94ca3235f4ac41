package pricing

import (
	"context"
	"errors"
	"time"

	"cazpay/models"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
)

const priceCacheKey = "settings:pricing"

// PriceCache holds the current price outside the database.
type PriceCache interface {
	Get(ctx context.Context) (*models.PriceSetting, bool, error)
	Set(ctx context.Context, setting models.PriceSetting) error
	Invalidate(ctx context.Context) error
}

type redisPriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPriceCache caches the pricing document in Redis for ttl.
func NewRedisPriceCache(client *redis.Client, ttl time.Duration) PriceCache {
	return &redisPriceCache{client: client, ttl: ttl}
}

func (c *redisPriceCache) Get(ctx context.Context) (*models.PriceSetting, bool, error) {
	data, err := c.client.Get(ctx, priceCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var setting models.PriceSetting
	if err := json.Unmarshal(data, &setting); err != nil {
		return nil, false, err
	}
	return &setting, true, nil
}

func (c *redisPriceCache) Set(ctx context.Context, setting models.PriceSetting) error {
	data, err := json.Marshal(setting)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, priceCacheKey, data, c.ttl).Err()
}

func (c *redisPriceCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, priceCacheKey).Err()
}
