package websocket

import (
	"sync"
	"time"
)

// maxCachedMessages bounds the per-room chat cache. The database is
// authoritative for history; the cache only keeps recent traffic.
const maxCachedMessages = 100

// Participant is one session's live presence inside a room.
type Participant struct {
	UserID     uint      `json:"id"`
	Name       string    `json:"name"`
	JoinedAt   time.Time `json:"joined_at"`
	Camera     bool      `json:"camera"`
	Microphone bool      `json:"microphone"`
}

// room holds the runtime state for one meeting: the set of present
// participants keyed by session token, plus a cache of recent messages.
type room struct {
	participants map[string]*Participant
	messages     []MessageEvent
}

// RoomRegistry maps meeting IDs to live rooms. Rooms are created lazily on
// first join and evicted when their last participant is removed. Every
// mutation happens under the registry lock so concurrent connection
// goroutines see a consistent participant set.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]*room),
	}
}

func (r *RoomRegistry) ensureRoomLocked(meetingID string) *room {
	rm, ok := r.rooms[meetingID]
	if !ok {
		rm = &room{participants: make(map[string]*Participant)}
		r.rooms[meetingID] = rm
	}
	return rm
}

// EnsureRoom creates an empty room for the meeting if none exists yet.
// Creation is atomic under the registry lock, so concurrent first joins
// cannot race into two rooms.
func (r *RoomRegistry) EnsureRoom(meetingID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureRoomLocked(meetingID)
}

// AddParticipant inserts (or overwrites) the participant entry for the given
// session token, creating the room if it does not exist yet.
func (r *RoomRegistry) AddParticipant(meetingID, token string, p Participant) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm := r.ensureRoomLocked(meetingID)
	rm.participants[token] = &p
}

// RemoveParticipant deletes and returns the participant entry for token.
// The room itself is evicted once its last participant is gone.
func (r *RoomRegistry) RemoveParticipant(meetingID, token string) (Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.rooms[meetingID]
	if !ok {
		return Participant{}, false
	}

	p, ok := rm.participants[token]
	if !ok {
		return Participant{}, false
	}
	delete(rm.participants, token)

	if len(rm.participants) == 0 {
		delete(r.rooms, meetingID)
	}

	return *p, true
}

// HasRoom reports whether a room exists for the meeting.
func (r *RoomRegistry) HasRoom(meetingID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[meetingID]
	return ok
}

// SetCamera updates the camera flag for the participant bound to token.
// It reports whether the room exists; a missing participant is a silent
// no-op because toggle events may trail a leave.
func (r *RoomRegistry) SetCamera(meetingID, token string, on bool) bool {
	return r.setFlag(meetingID, token, func(p *Participant) { p.Camera = on })
}

// SetMicrophone updates the microphone flag, with the same semantics as SetCamera.
func (r *RoomRegistry) SetMicrophone(meetingID, token string, on bool) bool {
	return r.setFlag(meetingID, token, func(p *Participant) { p.Microphone = on })
}

func (r *RoomRegistry) setFlag(meetingID, token string, set func(*Participant)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.rooms[meetingID]
	if !ok {
		return false
	}
	if p, ok := rm.participants[token]; ok {
		set(p)
	}
	return true
}

// Participants returns a snapshot of the room's participant entries.
// Order is not specified.
func (r *RoomRegistry) Participants(meetingID string) []Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[meetingID]
	if !ok {
		return []Participant{}
	}

	list := make([]Participant, 0, len(rm.participants))
	for _, p := range rm.participants {
		list = append(list, *p)
	}
	return list
}

// ParticipantTokens returns the session tokens currently present in the room,
// for broadcast fan-out.
func (r *RoomRegistry) ParticipantTokens(meetingID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[meetingID]
	if !ok {
		return nil
	}

	tokens := make([]string, 0, len(rm.participants))
	for token := range rm.participants {
		tokens = append(tokens, token)
	}
	return tokens
}

// RoomsContaining returns every meeting ID the session is currently a member
// of. A session may occupy several rooms at once if the client joined
// multiple meetings without leaving.
func (r *RoomRegistry) RoomsContaining(token string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for meetingID, rm := range r.rooms {
		if _, ok := rm.participants[token]; ok {
			ids = append(ids, meetingID)
		}
	}
	return ids
}

// CacheMessage appends a message to the room's recent-message cache,
// dropping the oldest entry past the cap. No-op if the room is absent.
func (r *RoomRegistry) CacheMessage(meetingID string, msg MessageEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.rooms[meetingID]
	if !ok {
		return
	}
	rm.messages = append(rm.messages, msg)
	if len(rm.messages) > maxCachedMessages {
		rm.messages = rm.messages[len(rm.messages)-maxCachedMessages:]
	}
}

// CachedMessages returns a snapshot of the room's recent-message cache.
func (r *RoomRegistry) CachedMessages(meetingID string) []MessageEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[meetingID]
	if !ok {
		return nil
	}
	return append([]MessageEvent(nil), rm.messages...)
}
