package notification

import (
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

// Draft is a notification produced by the resolver and not yet persisted.
type Draft struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type EventKind string

const (
	EventOrderCreated       EventKind = "order_created"
	EventOrderStatusChanged EventKind = "order_status_changed"
	EventPickupReminder     EventKind = "pickup_reminder"
)

// Event is a committed business event that may produce notifications.
type Event struct {
	Kind      EventKind      `json:"kind"`
	OrderID   int64          `json:"order_id"`
	OwnerID   string         `json:"owner_id"`
	OldStatus db.OrderStatus `json:"old_status,omitempty"`
	NewStatus db.OrderStatus `json:"new_status,omitempty"`
}

func OrderCreated(order db.Order) Event {
	return Event{
		Kind:      EventOrderCreated,
		OrderID:   order.ID,
		OwnerID:   order.UserID,
		NewStatus: order.Status,
	}
}

func OrderStatusChanged(order db.Order, oldStatus, newStatus db.OrderStatus) Event {
	return Event{
		Kind:      EventOrderStatusChanged,
		OrderID:   order.ID,
		OwnerID:   order.UserID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}

func PickupReminder(order db.Order) Event {
	return Event{
		Kind:      EventPickupReminder,
		OrderID:   order.ID,
		OwnerID:   order.UserID,
		NewStatus: order.Status,
	}
}

// Audience groups user IDs by role. It is built per event and never cached.
type Audience map[db.UserRole][]string
