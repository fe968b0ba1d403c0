package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	
	"github.com/hibiken/asynq"
	"github.com/katatrina/b2c-BE/internal/db/memdb"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(store *memdb.Store) *RedisTaskProcessor {
	broker := notification.NewBroker(store, event.NewRegistry(), nil)
	return &RedisTaskProcessor{
		pipeline: notification.NewPipeline(store, broker),
	}
}

func newOrderEventTask(t *testing.T, evt notification.Event) *asynq.Task {
	t.Helper()
	
	payload, err := json.Marshal(PayloadDispatchOrderEvent{Event: evt})
	require.NoError(t, err)
	return asynq.NewTask(TaskDispatchOrderEvent, payload)
}

func TestProcessTaskDispatchOrderEvent(t *testing.T) {
	store := memdb.New()
	store.AddUser("client-1", db.UserRoleClient)
	store.AddUser("admin-1", db.UserRoleAdmin)
	
	task := newOrderEventTask(t, notification.OrderCreated(db.Order{ID: 8, UserID: "client-1"}))
	require.NoError(t, newTestProcessor(store).ProcessTaskDispatchOrderEvent(context.Background(), task))
	
	notifications := store.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "client-1", notifications[0].UserID)
	assert.Equal(t, "admin-1", notifications[1].UserID)
}

func TestProcessTaskDispatchOrderEventBadPayload(t *testing.T) {
	task := asynq.NewTask(TaskDispatchOrderEvent, []byte("{"))
	
	err := newTestProcessor(memdb.New()).ProcessTaskDispatchOrderEvent(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestProcessTaskDispatchOrderEventStoreFailure(t *testing.T) {
	store := memdb.New()
	store.FailCreateNotification = errors.New("db down")
	
	task := newOrderEventTask(t, notification.OrderCreated(db.Order{ID: 8, UserID: "client-1"}))
	err := newTestProcessor(store).ProcessTaskDispatchOrderEvent(context.Background(), task)
	require.Error(t, err)
	
	// Chưa lưu được gì nên được phép retry
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}
