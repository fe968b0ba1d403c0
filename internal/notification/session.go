package notification

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultBufferSize   = 16
)

var ErrEmptyUserID = errors.New("user ID is required")

type SessionState int32

const (
	SessionOpening SessionState = iota
	SessionReplaying
	SessionLive
	SessionClosed
)

func (s SessionState) String() string {
	switch s {
	case SessionOpening:
		return "opening"
	case SessionReplaying:
		return "replaying"
	case SessionLive:
		return "live"
	case SessionClosed:
		return "closed"
	default:
		return fmt.Sprintf("SessionState(%d)", int32(s))
	}
}

type SessionConfig struct {
	// PollInterval is how often the store is re-queried for notifications the push path missed.
	PollInterval time.Duration
	
	// BufferSize bounds the pushes queued while the session is busy writing.
	BufferSize int
}

func (c SessionConfig) withDefaults() SessionConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	return c
}

// Session streams one user's notifications over one connection: it replays the backlog,
// then tails new notifications from pushes and from periodic store polls.
//
// The watermark only advances from store results and only bounds what the next poll asks for.
// Whether a notification is written is decided by the IDs this session already wrote, so a push
// that commits late with an ID below the watermark is still delivered.
type Session struct {
	userID   string
	store    Store
	registry *event.Registry
	stream   event.Stream
	config   SessionConfig
	
	state     atomic.Int32
	watermark atomic.Int64
	seen      *seenSet
}

func NewSession(userID string, store Store, registry *event.Registry, stream event.Stream, config SessionConfig) *Session {
	return &Session{
		userID:   userID,
		store:    store,
		registry: registry,
		stream:   stream,
		config:   config.withDefaults(),
		seen:     newSeenSet(DefaultDedupWindow),
	}
}

func (s *Session) State() SessionState {
	return SessionState(s.state.Load())
}

// Watermark returns the highest notification ID confirmed from the store.
func (s *Session) Watermark() int64 {
	return s.watermark.Load()
}

// Run blocks until ctx is cancelled or the stream fails. The subscriber is always
// deregistered before Run returns.
func (s *Session) Run(ctx context.Context) error {
	if s.userID == "" {
		return ErrEmptyUserID
	}
	
	subscriber := event.NewSubscriber(s.config.BufferSize)
	handle := s.registry.Add(s.userID, subscriber)
	defer func() {
		subscriber.Close()
		s.registry.Remove(s.userID, handle)
		s.state.Store(int32(SessionClosed))
		log.Info().Str("user_id", s.userID).Int64("watermark", s.Watermark()).Msg("notification stream closed")
	}()
	
	s.state.Store(int32(SessionReplaying))
	if err := s.replay(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	
	s.state.Store(int32(SessionLive))
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()
	
	for {
		select {
		case <-ctx.Done():
			return nil
		
		case <-ticker.C:
			if err := s.poll(ctx); err != nil {
				return err
			}
		
		case notification := <-subscriber.Outbound():
			if err := s.deliverPushed(notification); err != nil {
				return err
			}
		}
	}
}

func (s *Session) replay(ctx context.Context) error {
	notifications, err := s.store.ListNotificationsByUserID(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load notification backlog: %w", err)
	}
	
	for _, notification := range notifications {
		if s.seen.observe(notification.ID) {
			if err = s.stream.WriteNotification(notification); err != nil {
				return err
			}
		}
		s.advance(notification.ID)
	}
	
	return nil
}

// poll writes every stored notification above the watermark that this session has not written yet.
// Store errors are transient and only logged; the next tick retries.
func (s *Session) poll(ctx context.Context) error {
	notifications, err := s.store.ListNotificationsByUserIDAfter(ctx, db.ListNotificationsByUserIDAfterParams{
		UserID: s.userID,
		ID:     s.Watermark(),
	})
	if err != nil {
		if ctx.Err() == nil {
			log.Warn().Err(err).Str("user_id", s.userID).Msg("failed to poll notifications")
		}
		return nil
	}
	
	for _, notification := range notifications {
		if s.seen.observe(notification.ID) {
			if err = s.stream.WriteNotification(notification); err != nil {
				return err
			}
		}
		s.advance(notification.ID)
	}
	
	return nil
}

func (s *Session) deliverPushed(notification db.Notification) error {
	if notification.UserID != s.userID {
		return nil
	}
	
	if !s.seen.observe(notification.ID) {
		return nil
	}
	
	return s.stream.WriteNotification(notification)
}

func (s *Session) advance(id int64) {
	if id > s.watermark.Load() {
		s.watermark.Store(id)
	}
}
