package realtime

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshita-01/devPulse/internal/events"
)

type fakeConn struct {
	mu       sync.Mutex
	received []events.Event
	fail     bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("connection gone")
	}
	f.received = append(f.received, v.(events.Event))
	return nil
}

func (f *fakeConn) events() []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]events.Event(nil), f.received...)
}

func TestJoinLeaveRoundTrip(t *testing.T) {
	registry := NewRegistry()
	conn := &fakeConn{}

	require.Equal(t, 0, registry.Count("ws-1"))
	registry.Join("ws-1", conn)
	require.Equal(t, 1, registry.Count("ws-1"))
	registry.Leave("ws-1", conn)
	require.Equal(t, 0, registry.Count("ws-1"))

	// Absent and emptied entries behave identically.
	registry.Broadcast("ws-1", events.TaskDeleted("ws-1", "t-1"))
	assert.Empty(t, conn.events())

	registry.Join("ws-1", conn)
	registry.Broadcast("ws-1", events.TaskDeleted("ws-1", "t-1"))
	assert.Len(t, conn.events(), 1)
}

func TestLeaveUnknownConnIsNoop(t *testing.T) {
	registry := NewRegistry()
	conn := &fakeConn{}

	registry.Leave("ws-1", conn)
	registry.Join("ws-1", conn)
	registry.Leave("ws-1", conn)
	registry.Leave("ws-1", conn)
	assert.Equal(t, 0, registry.Count("ws-1"))
}

func TestBroadcastScopedToWorkspace(t *testing.T) {
	registry := NewRegistry()
	inWs := &fakeConn{}
	otherWs := &fakeConn{}

	registry.Join("ws-1", inWs)
	registry.Join("ws-2", otherWs)

	registry.Broadcast("ws-1", events.TaskCreated("ws-1", map[string]string{"id": "t-1"}))

	require.Len(t, inWs.events(), 1)
	assert.Equal(t, events.EventTaskCreated, inWs.events()[0].Type)
	assert.Empty(t, otherWs.events())
}

func TestBroadcastSwallowsStaleConnections(t *testing.T) {
	registry := NewRegistry()
	stale := &fakeConn{fail: true}
	healthy := &fakeConn{}

	registry.Join("ws-1", stale)
	registry.Join("ws-1", healthy)

	registry.Broadcast("ws-1", events.TaskDeleted("ws-1", "t-1"))

	assert.Len(t, healthy.events(), 1)
	// Failed sends do not evict the connection.
	assert.Equal(t, 2, registry.Count("ws-1"))
}

func TestConcurrentJoinLeaveBroadcast(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			workspace := fmt.Sprintf("ws-%d", i%4)
			conn := &fakeConn{}
			registry.Join(workspace, conn)
			registry.Broadcast(workspace, events.TaskDeleted(workspace, "t"))
			registry.Leave(workspace, conn)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, registry.Count(fmt.Sprintf("ws-%d", i)))
	}
}
