package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/lakshita-01/devPulse/internal/config"
	"github.com/lakshita-01/devPulse/internal/events"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			AccessTokenTTLDays: 7,
			BcryptCost:         bcrypt.MinCost,
		},
	}
}

// captureBroadcaster records broadcasts for assertions.
type captureBroadcaster struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *captureBroadcaster) Broadcast(workspaceID string, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *captureBroadcaster) forWorkspace(workspaceID string) []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []events.Event
	for _, ev := range b.events {
		if ev.WorkspaceID == workspaceID {
			result = append(result, ev)
		}
	}
	return result
}
