package checkout

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const eventKeyPrefix = "stripe:event:"

// EventDeduper remembers webhook event ids that were already processed.
type EventDeduper interface {
	// FirstDelivery records eventID and reports whether it was unseen.
	FirstDelivery(ctx context.Context, eventID string) (bool, error)
	// Forget drops eventID so a manual resend of the event is processed again. The
	// webhook still acknowledges failures, so the provider does not redeliver on its own.
	Forget(ctx context.Context, eventID string) error
}

type redisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper keeps processed event ids in Redis for ttl.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) EventDeduper {
	return &redisDeduper{client: client, ttl: ttl}
}

func (d *redisDeduper) FirstDelivery(ctx context.Context, eventID string) (bool, error) {
	return d.client.SetNX(ctx, eventKeyPrefix+eventID, time.Now().Unix(), d.ttl).Result()
}

func (d *redisDeduper) Forget(ctx context.Context, eventID string) error {
	return d.client.Del(ctx, eventKeyPrefix+eventID).Err()
}
