package worker

import (
	"context"
	"errors"
	"testing"
	
	"github.com/hibiken/asynq"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDistributor struct {
	payloads []*PayloadDispatchOrderEvent
	opts     [][]asynq.Option
	err      error
}

func (d *fakeDistributor) DistributeTaskDispatchOrderEvent(ctx context.Context, payload *PayloadDispatchOrderEvent, opts ...asynq.Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if d.err != nil {
		return d.err
	}
	d.payloads = append(d.payloads, payload)
	d.opts = append(d.opts, opts)
	return nil
}

func (d *fakeDistributor) Close() error {
	return nil
}

func TestAsyncDispatcherEnqueuesEvents(t *testing.T) {
	distributor := &fakeDistributor{}
	dispatcher := NewAsyncDispatcher(distributor)
	order := db.Order{ID: 3, UserID: "client-1", Status: db.OrderStatusPending}
	
	dispatcher.OnOrderCreated(context.Background(), order)
	dispatcher.OnOrderStatusChanged(context.Background(), order, db.OrderStatusPending, db.OrderStatusProcessing)
	
	require.Len(t, distributor.payloads, 2)
	assert.Equal(t, notification.OrderCreated(order), distributor.payloads[0].Event)
	assert.Equal(t, notification.OrderStatusChanged(order, db.OrderStatusPending, db.OrderStatusProcessing), distributor.payloads[1].Event)
	assert.Len(t, distributor.opts[0], 2)
}

func TestAsyncDispatcherIgnoresRequestCancellation(t *testing.T) {
	distributor := &fakeDistributor{}
	
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	
	NewAsyncDispatcher(distributor).OnOrderCreated(ctx, db.Order{ID: 1, UserID: "client-1"})
	assert.Len(t, distributor.payloads, 1)
}

func TestAsyncDispatcherSwallowsEnqueueErrors(t *testing.T) {
	distributor := &fakeDistributor{err: errors.New("redis down")}
	
	require.NotPanics(t, func() {
		NewAsyncDispatcher(distributor).OnOrderCreated(context.Background(), db.Order{ID: 1, UserID: "client-1"})
	})
	assert.Empty(t, distributor.payloads)
}
