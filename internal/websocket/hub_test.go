package websocket

import (
	"path/filepath"
	"testing"
	"time"

	"focuscam-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// A client whose send buffer is full gets dropped by the hub, and its
// Send channel is closed exactly once even when the read pump also
// unregisters it on teardown.
func TestHubDropsSlowClientOnce(t *testing.T) {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "hub.log"))
	hub := NewHub(nil, log)
	go hub.Run()

	client := &Client{
		Hub:    hub,
		UserID: uuid.New(),
		Send:   make(chan []byte, 1),
	}
	hub.register <- client
	client.Send <- []byte("backlog") // fill the buffer

	hub.Send(client.UserID, "sessionRows", []string{})

	// The read pump unregisters on connection teardown as well.
	hub.unregister <- client

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-client.Send:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("send channel was not closed after unregister")
		}
	}
}
