package ordertracking

import (
	"context"
	"time"
	
	"github.com/go-co-op/gocron/v2"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// OrderStore is the subset of db.Store the tracker needs.
type OrderStore interface {
	ListOrdersAwaitingPickupReminder(ctx context.Context, updatedBefore time.Time) ([]db.Order, error)
	MarkOrderPickupReminded(ctx context.Context, id int64) error
}

// Publisher persists and pushes a notification draft.
type Publisher interface {
	Publish(ctx context.Context, draft notification.Draft) (db.Notification, error)
}

// OrderTracker định kỳ nhắc người mua đến nhận các đơn hàng đang chờ lấy.
type OrderTracker struct {
	store         OrderStore
	publisher     Publisher
	scheduler     gocron.Scheduler
	remindAfter   time.Duration
	checkInterval time.Duration
}

// NewOrderTracker tạo một tracker mới cho các đơn hàng ReadyForPickup.
func NewOrderTracker(store OrderStore, publisher Publisher, remindAfter, checkInterval time.Duration) (*OrderTracker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	
	return &OrderTracker{
		store:         store,
		publisher:     publisher,
		scheduler:     scheduler,
		remindAfter:   remindAfter,
		checkInterval: checkInterval,
	}, nil
}

// Start bắt đầu chạy cronjob nhắc nhận hàng.
func (t *OrderTracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.checkInterval),
		gocron.NewTask(
			func() {
				log.Info().
					Str("job", "pickup_reminders").
					Time("start_time", time.Now()).
					Msg("Starting pickup reminder job")
				
				t.remindPendingPickups(context.Background())
			},
		),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	
	t.scheduler.Start()
	return nil
}

// Stop dừng cronjob.
func (t *OrderTracker) Stop() error {
	return t.scheduler.Shutdown()
}
