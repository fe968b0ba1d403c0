package notification

import (
	"context"
	"fmt"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

// Dispatcher receives committed order events. Calls are fire-and-forget: failures are
// logged and never reach the business operation that triggered them.
type Dispatcher interface {
	OnOrderCreated(ctx context.Context, order db.Order)
	OnOrderStatusChanged(ctx context.Context, order db.Order, oldStatus, newStatus db.OrderStatus)
}

// Pipeline resolves the audience of an event and publishes the resulting drafts.
type Pipeline struct {
	directory Directory
	broker    *Broker
}

var _ Dispatcher = (*Pipeline)(nil)

func NewPipeline(directory Directory, broker *Broker) *Pipeline {
	return &Pipeline{
		directory: directory,
		broker:    broker,
	}
}

// Handle runs evt through the resolver and the broker and returns the persisted notifications.
func (p *Pipeline) Handle(ctx context.Context, evt Event) ([]db.Notification, error) {
	audience := make(Audience)
	for _, role := range RolesFor(evt) {
		userIDs, err := p.directory.ListUserIDsByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("failed to list users with role %s: %w", role, err)
		}
		audience[role] = userIDs
	}
	
	drafts := Resolve(evt, audience)
	
	published := make([]db.Notification, 0, len(drafts))
	for _, draft := range drafts {
		notification, err := p.broker.Publish(ctx, draft)
		if err != nil {
			return published, err
		}
		published = append(published, notification)
	}
	
	return published, nil
}

func (p *Pipeline) OnOrderCreated(ctx context.Context, order db.Order) {
	p.dispatch(ctx, OrderCreated(order))
}

func (p *Pipeline) OnOrderStatusChanged(ctx context.Context, order db.Order, oldStatus, newStatus db.OrderStatus) {
	p.dispatch(ctx, OrderStatusChanged(order, oldStatus, newStatus))
}

func (p *Pipeline) dispatch(ctx context.Context, evt Event) {
	// Request cancellation must not cut the pipeline short once the order is committed.
	published, err := p.Handle(context.WithoutCancel(ctx), evt)
	if err != nil {
		log.Error().Err(err).
			Str("kind", string(evt.Kind)).
			Int64("order_id", evt.OrderID).
			Int("published", len(published)).
			Msg("failed to dispatch order event")
		return
	}
	
	log.Info().
		Str("kind", string(evt.Kind)).
		Int64("order_id", evt.OrderID).
		Int("published", len(published)).
		Msg("order event dispatched")
}
