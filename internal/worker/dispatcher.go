package worker

import (
	"context"
	
	"github.com/hibiken/asynq"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// AsyncDispatcher hands committed order events to the task queue instead of resolving them inline.
type AsyncDispatcher struct {
	distributor TaskDistributor
	opts        []asynq.Option
}

var _ notification.Dispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(distributor TaskDistributor) *AsyncDispatcher {
	return &AsyncDispatcher{
		distributor: distributor,
		opts: []asynq.Option{
			asynq.MaxRetry(3),
			asynq.Queue(QueueCritical),
		},
	}
}

func (d *AsyncDispatcher) OnOrderCreated(ctx context.Context, order db.Order) {
	d.enqueue(ctx, notification.OrderCreated(order))
}

func (d *AsyncDispatcher) OnOrderStatusChanged(ctx context.Context, order db.Order, oldStatus, newStatus db.OrderStatus) {
	d.enqueue(ctx, notification.OrderStatusChanged(order, oldStatus, newStatus))
}

func (d *AsyncDispatcher) enqueue(ctx context.Context, evt notification.Event) {
	err := d.distributor.DistributeTaskDispatchOrderEvent(context.WithoutCancel(ctx), &PayloadDispatchOrderEvent{
		Event: evt,
	}, d.opts...)
	if err != nil {
		log.Err(err).Str("kind", string(evt.Kind)).Int64("order_id", evt.OrderID).Msg("failed to enqueue order event")
	}
}
