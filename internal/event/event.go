package event

import (
	"errors"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

var (
	// ErrSubscriberClosed is returned when pushing to a subscriber whose session already ended.
	ErrSubscriberClosed = errors.New("subscriber is closed")
	
	// ErrSubscriberBusy is returned when a subscriber's outbound buffer is full.
	ErrSubscriberBusy = errors.New("subscriber outbound buffer is full")
)

// Channel is a live delivery sink for one connection.
// Send must not block and reports a DeliveryFailure through its error.
type Channel interface {
	Send(notification db.Notification) error
}

// Handle identifies one registration inside the Registry.
type Handle uint64

// Stream writes notifications to the transport of a single connection.
type Stream interface {
	WriteNotification(notification db.Notification) error
}
