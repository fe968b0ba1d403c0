package worker

import (
	"context"
	
	"github.com/hibiken/asynq"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type TaskProcessor interface {
	Start() error
	Shutdown()
}

type RedisTaskProcessor struct {
	server   *asynq.Server
	pipeline *notification.Pipeline
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, pipeline *notification.Pipeline) TaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)
	
	return &RedisTaskProcessor{
		server:   server,
		pipeline: pipeline,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()
	
	mux.HandleFunc(TaskDispatchOrderEvent, processor.ProcessTaskDispatchOrderEvent)
	
	return processor.server.Start(mux)
}

// Shutdown stops pulling new tasks and waits for in-flight tasks to finish.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
