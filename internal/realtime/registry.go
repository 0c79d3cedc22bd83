package realtime

import (
	"sync"

	"github.com/lakshita-01/devPulse/internal/events"
)

// Conn is the send half of a realtime connection. Implementations must be
// safe for concurrent WriteJSON calls.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Broadcaster fans an event out to a workspace's live connections.
type Broadcaster interface {
	Broadcast(workspaceID string, event events.Event)
}

// Registry tracks live realtime connections per workspace. It is the only
// mutable shared structure in the core; all access goes through its mutex.
// An empty connection set behaves identically to an absent entry.
type Registry struct {
	mu    sync.RWMutex
	conns map[string][]Conn
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string][]Conn)}
}

// Join adds a connection to a workspace's fan-out set.
func (r *Registry) Join(workspaceID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[workspaceID] = append(r.conns[workspaceID], conn)
}

// Leave removes a connection from a workspace's fan-out set. Removing a
// connection that is not present is a no-op.
func (r *Registry) Leave(workspaceID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.conns[workspaceID]
	for i, c := range set {
		if c == conn {
			r.conns[workspaceID] = append(set[:i:i], set[i+1:]...)
			break
		}
	}
	if len(r.conns[workspaceID]) == 0 {
		delete(r.conns, workspaceID)
	}
}

// Broadcast delivers the event to every connection currently joined to the
// workspace. Delivery is best-effort and at-most-once: a failed send is
// swallowed, does not abort delivery to the rest of the set, and does not
// remove the stale connection. Sends happen outside the lock against a
// snapshot, so joins and leaves never block on slow connections.
func (r *Registry) Broadcast(workspaceID string, event events.Event) {
	r.mu.RLock()
	snapshot := append([]Conn(nil), r.conns[workspaceID]...)
	r.mu.RUnlock()

	for _, conn := range snapshot {
		_ = conn.WriteJSON(event)
	}
}

// Count returns the number of live connections for a workspace.
func (r *Registry) Count(workspaceID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns[workspaceID])
}
