package ordertracking

import (
	"context"
	"time"
	
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// remindPendingPickups sends one reminder per order that has waited for pickup longer than remindAfter.
// It returns the number of reminders sent.
func (t *OrderTracker) remindPendingPickups(ctx context.Context) int {
	orders, err := t.store.ListOrdersAwaitingPickupReminder(ctx, time.Now().Add(-t.remindAfter))
	if err != nil {
		log.Err(err).Msg("failed to list orders awaiting pickup reminder")
		return 0
	}
	
	sent := 0
	for _, order := range orders {
		drafts := notification.Resolve(notification.PickupReminder(order), nil)
		
		failed := false
		for _, draft := range drafts {
			if _, err = t.publisher.Publish(ctx, draft); err != nil {
				log.Err(err).Int64("order_id", order.ID).Msg("failed to publish pickup reminder")
				failed = true
				break
			}
		}
		if failed {
			continue
		}
		
		if err = t.store.MarkOrderPickupReminded(ctx, order.ID); err != nil {
			log.Err(err).Int64("order_id", order.ID).Msg("failed to mark order as reminded")
			continue
		}
		sent++
	}
	
	if sent > 0 {
		log.Info().Int("sent", sent).Msg("pickup reminders sent")
	}
	
	return sent
}
