package websocket

import (
	"testing"

	"github.com/meetly/meeting_backend/models"
)

func TestConnectAndResolve(t *testing.T) {
	d := NewSessionDirectory()
	user := &models.User{ID: 1, Name: "alice"}

	token, err := d.Connect(user)
	if err != nil {
		t.Fatalf("Connect err: %v", err)
	}
	if token == "" {
		t.Fatal("Connect returned an empty token")
	}

	got, ok := d.Resolve(token)
	if !ok {
		t.Fatal("Resolve should find the connected session")
	}
	if got.ID != user.ID {
		t.Fatalf("resolved user ID = %d, want %d", got.ID, user.ID)
	}
}

func TestConnectRejectsMissingIdentity(t *testing.T) {
	d := NewSessionDirectory()

	if _, err := d.Connect(nil); err != ErrNotAuthenticated {
		t.Fatalf("Connect(nil) err = %v, want ErrNotAuthenticated", err)
	}
}

func TestDisconnectRemovesBinding(t *testing.T) {
	d := NewSessionDirectory()
	token, _ := d.Connect(&models.User{ID: 1, Name: "alice"})

	d.Disconnect(token)

	if _, ok := d.Resolve(token); ok {
		t.Fatal("Resolve should fail after Disconnect")
	}

	// Disconnect can be reached from several paths; a second call is a no-op
	d.Disconnect(token)
}

func TestReconnectOverwritesUserMapping(t *testing.T) {
	d := NewSessionDirectory()
	user := &models.User{ID: 1, Name: "alice"}

	first, _ := d.Connect(user)
	second, _ := d.Connect(user)

	if first == second {
		t.Fatal("each connection must mint a distinct token")
	}

	// Tearing down the stale session must not clear the fresh one
	d.Disconnect(first)
	if _, ok := d.Resolve(second); !ok {
		t.Fatal("disconnecting the old session should leave the new one intact")
	}
}
