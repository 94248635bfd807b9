package websocket

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meetly/meeting_backend/models"
)

// Broadcaster is the outbound side of the engine: room-wide fan-out and
// per-session unicast. The hub implements it over live connections.
type Broadcaster interface {
	ToRoom(meetingID, eventType string, payload interface{})
	ToSession(token, eventType string, payload interface{})
}

// Engine drives the presence and messaging state of every meeting room.
// Each handler resolves the acting session first; on failure the event is
// dropped silently, except send_message which answers with an error event.
type Engine struct {
	sessions *SessionDirectory
	rooms    *RoomRegistry
	store    Store
	out      Broadcaster
}

func NewEngine(sessions *SessionDirectory, rooms *RoomRegistry, store Store, out Broadcaster) *Engine {
	return &Engine{
		sessions: sessions,
		rooms:    rooms,
		store:    store,
		out:      out,
	}
}

// Connect binds an authenticated user to a fresh session token.
func (e *Engine) Connect(user *models.User) (string, error) {
	return e.sessions.Connect(user)
}

// HandleEvent dispatches one inbound client event by type.
func (e *Engine) HandleEvent(token string, raw []byte) {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("error unmarshaling event: %v", err)
		return
	}

	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		log.Printf("error marshaling payload: %v", err)
		return
	}

	switch event.Type {
	case EventJoinMeeting:
		var payload JoinPayload
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			log.Printf("error unmarshaling join payload: %v", err)
			return
		}
		e.HandleJoin(token, payload)
	case EventLeaveMeeting:
		var payload JoinPayload
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			log.Printf("error unmarshaling leave payload: %v", err)
			return
		}
		e.HandleLeave(token, payload)
	case EventSendMessage:
		var payload MessagePayload
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			log.Printf("error unmarshaling message payload: %v", err)
			return
		}
		e.HandleMessage(token, payload)
	case EventSendReaction:
		var payload ReactionPayload
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			log.Printf("error unmarshaling reaction payload: %v", err)
			return
		}
		e.HandleReaction(token, payload)
	case EventToggleCamera:
		var payload CameraPayload
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			log.Printf("error unmarshaling camera payload: %v", err)
			return
		}
		e.HandleToggleCamera(token, payload)
	case EventToggleMicrophone:
		var payload MicrophonePayload
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			log.Printf("error unmarshaling microphone payload: %v", err)
			return
		}
		e.HandleToggleMicrophone(token, payload)
	default:
		log.Printf("unknown event type: %q", event.Type)
	}
}

// HandleJoin registers the session in the meeting's room, replays chat
// history to the joiner and announces the updated participant list to
// everyone in the room, joiner included.
func (e *Engine) HandleJoin(token string, payload JoinPayload) {
	user, ok := e.sessions.Resolve(token)
	if !ok {
		log.Printf("join rejected: invalid session")
		return
	}
	if payload.MeetingID == "" {
		log.Printf("join rejected: no meeting_id")
		return
	}

	e.rooms.AddParticipant(payload.MeetingID, token, Participant{
		UserID:     user.ID,
		Name:       user.Name,
		JoinedAt:   time.Now(),
		Camera:     true,
		Microphone: true,
	})

	history, err := e.store.LoadChatHistory(payload.MeetingID)
	if err != nil {
		log.Printf("error loading chat history for meeting %s: %v", payload.MeetingID, err)
	}
	if history == nil {
		history = []ChatHistoryEntry{}
	}
	e.out.ToSession(token, EventChatHistory, ChatHistoryEvent{Messages: history})

	participants := e.rooms.Participants(payload.MeetingID)
	e.out.ToRoom(payload.MeetingID, EventUserJoined, PresenceEvent{
		UserName:     user.Name,
		Message:      user.Name + " joined the meeting",
		Participants: participants,
	})

	log.Printf("user %s joined meeting %s (%d participants)", user.Name, payload.MeetingID, len(participants))
}

// HandleLeave removes the session from the room and announces the updated
// participant list to those who remain.
func (e *Engine) HandleLeave(token string, payload JoinPayload) {
	user, ok := e.sessions.Resolve(token)
	if !ok {
		return
	}
	if payload.MeetingID == "" || !e.rooms.HasRoom(payload.MeetingID) {
		return
	}

	e.rooms.RemoveParticipant(payload.MeetingID, token)

	e.out.ToRoom(payload.MeetingID, EventUserLeft, PresenceEvent{
		UserName:     user.Name,
		Message:      user.Name + " left the meeting",
		Participants: e.rooms.Participants(payload.MeetingID),
	})
}

// HandleDisconnect removes the session from every room it occupies and
// destroys the session binding. Idempotent: a second call for the same
// token finds nothing to do.
func (e *Engine) HandleDisconnect(token string) {
	user, ok := e.sessions.Resolve(token)
	if !ok {
		return
	}

	for _, meetingID := range e.rooms.RoomsContaining(token) {
		e.rooms.RemoveParticipant(meetingID, token)
		e.out.ToRoom(meetingID, EventUserLeft, PresenceEvent{
			UserName:     user.Name,
			Message:      user.Name + " left the meeting",
			Participants: e.rooms.Participants(meetingID),
		})
	}

	e.sessions.Disconnect(token)
	log.Printf("user %s disconnected", user.Name)
}

// HandleMessage persists the chat line, fans it out to the room and
// acknowledges the sender. This is the one handler that reports failures
// back to the caller instead of dropping the event.
func (e *Engine) HandleMessage(token string, payload MessagePayload) {
	user, ok := e.sessions.Resolve(token)
	if !ok {
		e.out.ToSession(token, EventError, ErrorEvent{Message: "Not authenticated"})
		return
	}

	text := strings.TrimSpace(payload.Message)
	if payload.MeetingID == "" || text == "" {
		e.out.ToSession(token, EventError, ErrorEvent{Message: "Invalid message data"})
		return
	}

	if err := e.store.AppendChatMessage(payload.MeetingID, user.ID, user.Name, text); err != nil {
		log.Printf("error saving chat message: %v", err)
	}

	msg := MessageEvent{
		ID:        uuid.NewString(),
		UserName:  user.Name,
		Message:   text,
		Timestamp: time.Now().Format("15:04:05"),
	}
	e.rooms.CacheMessage(payload.MeetingID, msg)

	e.out.ToRoom(payload.MeetingID, EventNewMessage, msg)
	e.out.ToSession(token, EventMessageSent, AckEvent{
		Status:  "success",
		Message: "Message sent successfully",
	})
}

// HandleReaction fans an emoji reaction out to the room. Reactions are
// ephemeral: nothing is persisted.
func (e *Engine) HandleReaction(token string, payload ReactionPayload) {
	user, ok := e.sessions.Resolve(token)
	if !ok {
		return
	}
	if payload.MeetingID == "" || payload.Emoji == "" {
		return
	}

	e.out.ToRoom(payload.MeetingID, EventNewReaction, ReactionEvent{
		ID:        uuid.NewString(),
		UserName:  user.Name,
		Emoji:     payload.Emoji,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HandleToggleCamera flips the sender's camera flag and announces the new
// state to the room.
func (e *Engine) HandleToggleCamera(token string, payload CameraPayload) {
	user, ok := e.sessions.Resolve(token)
	if !ok {
		return
	}
	if payload.MeetingID == "" {
		return
	}

	if !e.rooms.SetCamera(payload.MeetingID, token, payload.CameraOn) {
		return
	}

	e.out.ToRoom(payload.MeetingID, EventCameraToggled, CameraToggledEvent{
		UserID:   user.ID,
		UserName: user.Name,
		CameraOn: payload.CameraOn,
	})
}

// HandleToggleMicrophone flips the sender's microphone flag and announces
// the new state to the room.
func (e *Engine) HandleToggleMicrophone(token string, payload MicrophonePayload) {
	user, ok := e.sessions.Resolve(token)
	if !ok {
		return
	}
	if payload.MeetingID == "" {
		return
	}

	if !e.rooms.SetMicrophone(payload.MeetingID, token, payload.MicOn) {
		return
	}

	e.out.ToRoom(payload.MeetingID, EventMicrophoneToggled, MicrophoneToggledEvent{
		UserID:   user.ID,
		UserName: user.Name,
		MicOn:    payload.MicOn,
	})
}
