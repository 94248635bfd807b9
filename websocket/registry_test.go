package websocket

import (
	"sort"
	"testing"
	"time"
)

func testParticipant(userID uint, name string) Participant {
	return Participant{
		UserID:     userID,
		Name:       name,
		JoinedAt:   time.Now(),
		Camera:     true,
		Microphone: true,
	}
}

func TestEnsureRoomIsIdempotent(t *testing.T) {
	r := NewRoomRegistry()

	r.EnsureRoom("1234567890")
	r.EnsureRoom("1234567890")

	if !r.HasRoom("1234567890") {
		t.Fatal("room should exist after EnsureRoom")
	}
	if got := len(r.Participants("1234567890")); got != 0 {
		t.Fatalf("new room should be empty, got %d participants", got)
	}
}

func TestJoinThenLeaveNetEffect(t *testing.T) {
	r := NewRoomRegistry()

	r.AddParticipant("1234567890", "tok-a", testParticipant(1, "alice"))
	if got := len(r.Participants("1234567890")); got != 1 {
		t.Fatalf("expected 1 participant after join, got %d", got)
	}

	p, ok := r.RemoveParticipant("1234567890", "tok-a")
	if !ok {
		t.Fatal("RemoveParticipant should find the joined participant")
	}
	if p.Name != "alice" {
		t.Errorf("removed participant name = %q, want alice", p.Name)
	}
	if got := len(r.Participants("1234567890")); got != 0 {
		t.Fatalf("expected 0 participants after leave, got %d", got)
	}
}

func TestDoubleJoinIsIdempotent(t *testing.T) {
	r := NewRoomRegistry()

	r.AddParticipant("1234567890", "tok-a", testParticipant(1, "alice"))
	r.AddParticipant("1234567890", "tok-a", testParticipant(1, "alice"))

	if got := len(r.Participants("1234567890")); got != 1 {
		t.Fatalf("joining twice with the same token should keep one entry, got %d", got)
	}
}

func TestRemoveFromUnknownRoomIsNoop(t *testing.T) {
	r := NewRoomRegistry()

	if _, ok := r.RemoveParticipant("0000000000", "tok-a"); ok {
		t.Fatal("removing from a nonexistent room should report no participant")
	}
}

func TestEmptyRoomIsEvicted(t *testing.T) {
	r := NewRoomRegistry()

	r.AddParticipant("1234567890", "tok-a", testParticipant(1, "alice"))
	r.RemoveParticipant("1234567890", "tok-a")

	if r.HasRoom("1234567890") {
		t.Fatal("room should be evicted once its last participant leaves")
	}
}

func TestToggleBeforeJoinIsNoop(t *testing.T) {
	r := NewRoomRegistry()

	if r.SetCamera("1234567890", "tok-a", false) {
		t.Error("SetCamera on a nonexistent room should report false")
	}
	if r.SetMicrophone("1234567890", "tok-a", false) {
		t.Error("SetMicrophone on a nonexistent room should report false")
	}
	if r.HasRoom("1234567890") {
		t.Fatal("toggling must not create a room")
	}
}

func TestToggleForAbsentParticipantLeavesRoomUnchanged(t *testing.T) {
	r := NewRoomRegistry()
	r.AddParticipant("1234567890", "tok-a", testParticipant(1, "alice"))

	if !r.SetCamera("1234567890", "tok-gone", false) {
		t.Fatal("SetCamera should report that the room exists")
	}

	for _, p := range r.Participants("1234567890") {
		if !p.Camera {
			t.Fatal("toggling an absent token must not touch other participants")
		}
	}
}

func TestSetFlagsMutateOnlyTargetedParticipant(t *testing.T) {
	r := NewRoomRegistry()
	r.AddParticipant("1234567890", "tok-a", testParticipant(1, "alice"))
	r.AddParticipant("1234567890", "tok-b", testParticipant(2, "bob"))

	r.SetCamera("1234567890", "tok-a", false)
	r.SetMicrophone("1234567890", "tok-b", false)

	for _, p := range r.Participants("1234567890") {
		switch p.Name {
		case "alice":
			if p.Camera {
				t.Error("alice's camera should be off")
			}
			if !p.Microphone {
				t.Error("alice's microphone should still be on")
			}
		case "bob":
			if !p.Camera {
				t.Error("bob's camera should still be on")
			}
			if p.Microphone {
				t.Error("bob's microphone should be off")
			}
		}
	}
}

func TestRoomsContaining(t *testing.T) {
	r := NewRoomRegistry()

	// One session may sit in several rooms at once
	r.AddParticipant("1111111111", "tok-a", testParticipant(1, "alice"))
	r.AddParticipant("2222222222", "tok-a", testParticipant(1, "alice"))
	r.AddParticipant("3333333333", "tok-b", testParticipant(2, "bob"))

	rooms := r.RoomsContaining("tok-a")
	sort.Strings(rooms)
	if len(rooms) != 2 || rooms[0] != "1111111111" || rooms[1] != "2222222222" {
		t.Fatalf("RoomsContaining(tok-a) = %v, want the two joined rooms", rooms)
	}

	if rooms := r.RoomsContaining("tok-unknown"); len(rooms) != 0 {
		t.Fatalf("unknown session should occupy no rooms, got %v", rooms)
	}
}

func TestCacheMessageBoundsAndRoomAbsence(t *testing.T) {
	r := NewRoomRegistry()

	// Caching against a nonexistent room must not create one
	r.CacheMessage("1234567890", MessageEvent{ID: "x", Message: "hi"})
	if r.HasRoom("1234567890") {
		t.Fatal("CacheMessage must not create rooms")
	}

	r.AddParticipant("1234567890", "tok-a", testParticipant(1, "alice"))
	for i := 0; i < maxCachedMessages+10; i++ {
		r.CacheMessage("1234567890", MessageEvent{ID: "m", Message: "hi"})
	}
	if got := len(r.CachedMessages("1234567890")); got != maxCachedMessages {
		t.Fatalf("cache should be capped at %d, got %d", maxCachedMessages, got)
	}
}
