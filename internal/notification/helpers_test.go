package notification

import (
	"context"
	"errors"
	"sync"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

var errTest = errors.New("test error")

// recordingStream captures everything a session writes.
type recordingStream struct {
	mu      sync.Mutex
	written []db.Notification
	err     error
}

func (s *recordingStream) WriteNotification(notification db.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if s.err != nil {
		return s.err
	}
	s.written = append(s.written, notification)
	return nil
}

func (s *recordingStream) Written() []db.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	return append([]db.Notification(nil), s.written...)
}

func (s *recordingStream) IDs() []int64 {
	written := s.Written()
	ids := make([]int64, len(written))
	for i, notification := range written {
		ids[i] = notification.ID
	}
	return ids
}

type failingChannel struct{}

func (failingChannel) Send(db.Notification) error {
	return errTest
}

type recordingChannel struct {
	mu       sync.Mutex
	received []db.Notification
}

func (c *recordingChannel) Send(notification db.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	
	c.received = append(c.received, notification)
	return nil
}

func (c *recordingChannel) Received() []db.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	
	return append([]db.Notification(nil), c.received...)
}

type fakeRelay struct {
	mu        sync.Mutex
	published []db.Notification
	err       error
}

func (r *fakeRelay) Publish(ctx context.Context, notification db.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	if r.err != nil {
		return r.err
	}
	r.published = append(r.published, notification)
	return nil
}

type failingDirectory struct{}

func (failingDirectory) ListUserIDsByRole(context.Context, db.UserRole) ([]string, error) {
	return nil, errTest
}
