package notification

import (
	"context"
	"fmt"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/rs/zerolog/log"
)

// Broker persists notifications and pushes them to every live channel of the recipient.
type Broker struct {
	store    Store
	registry *event.Registry
	relay    Relay
}

// NewBroker creates a Broker. relay may be nil, in which case pushes only reach channels registered in this process.
func NewBroker(store Store, registry *event.Registry, relay Relay) *Broker {
	return &Broker{
		store:    store,
		registry: registry,
		relay:    relay,
	}
}

// Publish persists the draft and then pushes it. Only the persistence step can fail;
// push failures are absorbed because connected sessions catch up from the store.
func (b *Broker) Publish(ctx context.Context, draft Draft) (db.Notification, error) {
	notification, err := b.store.CreateNotification(ctx, db.CreateNotificationParams{
		UserID:  draft.UserID,
		Title:   draft.Title,
		Message: draft.Message,
	})
	if err != nil {
		return notification, fmt.Errorf("failed to persist notification: %w", err)
	}
	
	if b.relay != nil {
		err = b.relay.Publish(ctx, notification)
		if err == nil {
			return notification, nil
		}
		
		log.Warn().Err(err).Int64("notification_id", notification.ID).Msg("relay publish failed, delivering locally")
	}
	
	b.Deliver(notification)
	return notification, nil
}

// Deliver pushes an already persisted notification to a snapshot of the recipient's channels
// and returns how many accepted it.
func (b *Broker) Deliver(notification db.Notification) int {
	channels := b.registry.ChannelsFor(notification.UserID)
	
	delivered := 0
	for _, channel := range channels {
		if err := channel.Send(notification); err != nil {
			log.Debug().Err(err).
				Str("user_id", notification.UserID).
				Int64("notification_id", notification.ID).
				Msg("push to subscriber failed")
			continue
		}
		delivered++
	}
	
	return delivered
}
