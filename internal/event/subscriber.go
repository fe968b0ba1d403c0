package event

import (
	"sync"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

// Subscriber is the Channel registered by a streaming session.
// Pushes are buffered and drained by the session goroutine, which is the only writer of the transport.
type Subscriber struct {
	mu       sync.RWMutex
	closed   bool
	outbound chan db.Notification
}

func NewSubscriber(bufferSize int) *Subscriber {
	if bufferSize < 1 {
		bufferSize = 1
	}
	
	return &Subscriber{
		outbound: make(chan db.Notification, bufferSize),
	}
}

// Send queues a notification without blocking.
func (s *Subscriber) Send(notification db.Notification) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	
	if s.closed {
		return ErrSubscriberClosed
	}
	
	select {
	case s.outbound <- notification:
		return nil
	default:
		return ErrSubscriberBusy
	}
}

// Outbound returns the queue of pushed notifications.
func (s *Subscriber) Outbound() <-chan db.Notification {
	return s.outbound
}

// Close makes every later Send fail with ErrSubscriberClosed. It is safe to call more than once.
// The outbound channel is left open so a concurrent Send can never panic.
func (s *Subscriber) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
