package worker

import (
	"context"
	"encoding/json"
	"fmt"
	
	"github.com/hibiken/asynq"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// PayloadDispatchOrderEvent contain all data of the task that we want to store in Redis.
type PayloadDispatchOrderEvent struct {
	Event notification.Event `json:"event"`
}

func (distributor *RedisTaskDistributor) DistributeTaskDispatchOrderEvent(
	ctx context.Context,
	payload *PayloadDispatchOrderEvent,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}
	
	task := asynq.NewTask(TaskDispatchOrderEvent, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	
	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")
	
	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskDispatchOrderEvent(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadDispatchOrderEvent
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}
	
	published, err := processor.pipeline.Handle(ctx, payload.Event)
	if err != nil {
		// Retrying would duplicate the notifications that were already persisted.
		if len(published) > 0 {
			return fmt.Errorf("partially dispatched order event: %v: %w", err, asynq.SkipRetry)
		}
		return err
	}
	
	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Int64("order_id", payload.Event.OrderID).Int("published", len(published)).Msg("task processed")
	
	return nil
}
