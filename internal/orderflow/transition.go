package orderflow

import (
	"errors"
	"fmt"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

var (
	ErrInvalidTransition = errors.New("order status transition is not allowed")
	ErrOwnerMismatch     = errors.New("order does not belong to the user")
	ErrInvalidPickupCode = errors.New("pickup code does not match the order")
)

// Trigger is the kind of actor action that requests a transition.
type Trigger string

const (
	// TriggerOperator is a staff action moving the order forward.
	TriggerOperator Trigger = "operator"
	
	// TriggerPickupVerification is the owner presenting the order's pickup code.
	TriggerPickupVerification Trigger = "pickup_verification"
	
	// TriggerAdministrative is an administrative cancellation.
	TriggerAdministrative Trigger = "administrative"
)

// transitions maps the current status to the statuses it may move to and the trigger each move requires.
// Terminal statuses have no outgoing edges, so a delivered order can no longer be cancelled.
var transitions = map[db.OrderStatus]map[db.OrderStatus]Trigger{
	db.OrderStatusPending: {
		db.OrderStatusProcessing: TriggerOperator,
		db.OrderStatusCancelled:  TriggerAdministrative,
	},
	db.OrderStatusProcessing: {
		db.OrderStatusReadyForPickup: TriggerOperator,
		db.OrderStatusCancelled:      TriggerAdministrative,
	},
	db.OrderStatusReadyForPickup: {
		db.OrderStatusDelivered: TriggerPickupVerification,
		db.OrderStatusCancelled: TriggerAdministrative,
	},
}

// Request describes a requested status change.
type Request struct {
	OrderID int64
	To      db.OrderStatus
	Trigger Trigger
	
	// Set for TriggerPickupVerification only.
	VerifierID string
	PickupCode string
}

// TriggerFor returns the trigger an administrator uses to move an order to status.
func TriggerFor(status db.OrderStatus) Trigger {
	if status == db.OrderStatusCancelled {
		return TriggerAdministrative
	}
	
	return TriggerOperator
}

// Check validates req against the current order. It does not mutate anything.
func Check(order db.Order, req Request) error {
	if req.Trigger == TriggerPickupVerification {
		if req.VerifierID != order.UserID {
			return ErrOwnerMismatch
		}
		if req.PickupCode != order.PickupCode {
			return ErrInvalidPickupCode
		}
	}
	
	if order.Status.IsTerminal() {
		return fmt.Errorf("%w: order is already %s", ErrInvalidTransition, order.Status.DisplayName())
	}
	
	trigger, ok := transitions[order.Status][req.To]
	if !ok || trigger != req.Trigger {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status.DisplayName(), req.To.DisplayName())
	}
	
	return nil
}
