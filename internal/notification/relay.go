package notification

import (
	"context"
	"encoding/json"
	"fmt"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Relay fans persisted notifications out to every API instance.
type Relay interface {
	Publish(ctx context.Context, notification db.Notification) error
}

// RedisRelay relays notifications over a Redis pub/sub channel.
type RedisRelay struct {
	client  *redis.Client
	channel string
}

func NewRedisRelay(client *redis.Client, channel string) *RedisRelay {
	return &RedisRelay{
		client:  client,
		channel: channel,
	}
}

func (r *RedisRelay) Publish(ctx context.Context, notification db.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Start subscribes to the relay channel and calls onMessage for every notification
// until ctx is cancelled. It returns once the subscription is confirmed.
func (r *RedisRelay) Start(ctx context.Context, onMessage func(notification db.Notification)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	
	// Đảm bảo subscription đã thực sự được thiết lập
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("failed to subscribe to relay channel: %w", err)
	}
	
	go func() {
		defer sub.Close()
		
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				
				var notification db.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &notification); err != nil {
					log.Warn().Err(err).Str("channel", r.channel).Msg("bad relay payload")
					continue
				}
				onMessage(notification)
			}
		}
	}()
	
	log.Info().Str("channel", r.channel).Msg("notification relay started ✅")
	return nil
}
