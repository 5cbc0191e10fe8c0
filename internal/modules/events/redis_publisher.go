package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Channel carries every reaction event for out-of-process consumers.
const Channel = "reactions.changed"

// NewRedisPublisher returns a subscriber that publishes events to Redis
// pub/sub. Publish failures are logged and swallowed: the write already
// committed and the store stays consistent.
func NewRedisPublisher(rdb *redis.Client) Subscriber {
	return func(ctx context.Context, ev ReactionEvent) {
		if rdb == nil {
			return
		}

		payload, err := json.Marshal(ev)
		if err != nil {
			return
		}

		if err := rdb.Publish(ctx, Channel, payload).Err(); err != nil {
			log.Printf("redis reaction event publish failed: %v", err)
		}
	}
}
