package event

import (
	"sync"
	
	"github.com/rs/zerolog/log"
)

// Registry maps user IDs to the channels of their currently connected sessions.
// A single mutex guards both mutations and snapshots.
type Registry struct {
	mu      sync.Mutex
	clients map[string]map[Handle]Channel
	next    Handle
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]map[Handle]Channel),
	}
}

// Add registers a channel for push delivery to userID.
func (r *Registry) Add(userID string, channel Channel) Handle {
	r.mu.Lock()
	r.next++
	handle := r.next
	
	channels, ok := r.clients[userID]
	if !ok {
		channels = make(map[Handle]Channel)
		r.clients[userID] = channels
	}
	channels[handle] = channel
	total := len(channels)
	r.mu.Unlock()
	
	log.Debug().Str("user_id", userID).Uint64("handle", uint64(handle)).Int("channels", total).Msg("subscriber registered")
	return handle
}

// Remove deregisters a channel. Removing an unknown handle is a no-op.
// The user entry is pruned once its last channel is gone.
func (r *Registry) Remove(userID string, handle Handle) {
	r.mu.Lock()
	channels, ok := r.clients[userID]
	if !ok {
		r.mu.Unlock()
		return
	}
	
	if _, ok = channels[handle]; !ok {
		r.mu.Unlock()
		return
	}
	
	delete(channels, handle)
	if len(channels) == 0 {
		delete(r.clients, userID)
	}
	remaining := len(channels)
	r.mu.Unlock()
	
	log.Debug().Str("user_id", userID).Uint64("handle", uint64(handle)).Int("remaining", remaining).Msg("subscriber unregistered")
}

// ChannelsFor returns a point-in-time copy of the channels registered for userID.
func (r *Registry) ChannelsFor(userID string) []Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	channels := r.clients[userID]
	snapshot := make([]Channel, 0, len(channels))
	for _, channel := range channels {
		snapshot = append(snapshot, channel)
	}
	
	return snapshot
}

// Len returns the number of distinct users with at least one live channel.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	return len(r.clients)
}
