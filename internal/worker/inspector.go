package worker

import (
	"context"
	
	"github.com/hibiken/asynq"
)

type TaskInspector interface {
	// PendingTasks returns the number of tasks waiting in queue.
	PendingTasks(ctx context.Context, queue string) (int, error)
}

type RedisTaskInspector struct {
	inspector *asynq.Inspector
}

func NewTaskInspector(redisOpt asynq.RedisClientOpt) TaskInspector {
	return &RedisTaskInspector{
		inspector: asynq.NewInspector(redisOpt),
	}
}

func (i *RedisTaskInspector) PendingTasks(ctx context.Context, queue string) (int, error) {
	info, err := i.inspector.GetQueueInfo(queue)
	if err != nil {
		return 0, err
	}
	
	return info.Pending + info.Scheduled + info.Retry, nil
}
