package orderflow

import (
	"context"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

// OrderStore applies a status change atomically against a locked order row.
type OrderStore interface {
	UpdateOrderStatusTx(ctx context.Context, arg db.UpdateOrderStatusTxParams) (db.UpdateOrderStatusTxResult, error)
}

// Notifier is told about every committed status change.
type Notifier interface {
	OnOrderStatusChanged(ctx context.Context, order db.Order, oldStatus, newStatus db.OrderStatus)
}

// StatusChanged is the event produced by an accepted transition.
type StatusChanged struct {
	Order     db.Order       `json:"order"`
	OldStatus db.OrderStatus `json:"old_status"`
	NewStatus db.OrderStatus `json:"new_status"`
}

type Workflow struct {
	store    OrderStore
	notifier Notifier
}

func NewWorkflow(store OrderStore, notifier Notifier) *Workflow {
	return &Workflow{
		store:    store,
		notifier: notifier,
	}
}

// Transition validates and commits req, then forwards exactly one StatusChanged event to the notifier.
// A rejected request writes nothing and notifies no one.
func (w *Workflow) Transition(ctx context.Context, req Request) (StatusChanged, error) {
	result, err := w.store.UpdateOrderStatusTx(ctx, db.UpdateOrderStatusTxParams{
		OrderID: req.OrderID,
		CheckTransition: func(order db.Order) (db.OrderStatus, error) {
			if err := Check(order, req); err != nil {
				return "", err
			}
			return req.To, nil
		},
	})
	if err != nil {
		return StatusChanged{}, err
	}
	
	changed := StatusChanged{
		Order:     result.Order,
		OldStatus: result.OldStatus,
		NewStatus: result.Order.Status,
	}
	
	log.Info().
		Int64("order_id", changed.Order.ID).
		Str("old_status", string(changed.OldStatus)).
		Str("new_status", string(changed.NewStatus)).
		Str("trigger", string(req.Trigger)).
		Msg("order status updated")
	
	// Chỉ gửi thông báo sau khi trạng thái mới đã được commit
	w.notifier.OnOrderStatusChanged(ctx, changed.Order, changed.OldStatus, changed.NewStatus)
	
	return changed, nil
}
