package websocket

// Event is the envelope for every message crossing the websocket,
// in both directions: a type tag plus a type-specific payload.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Inbound event types
const (
	EventJoinMeeting      = "join_meeting"
	EventLeaveMeeting     = "leave_meeting"
	EventSendMessage      = "send_message"
	EventSendReaction     = "send_reaction"
	EventToggleCamera     = "toggle_camera"
	EventToggleMicrophone = "toggle_microphone"
)

// Outbound event types
const (
	EventChatHistory       = "chat_history"
	EventUserJoined        = "user_joined"
	EventUserLeft          = "user_left"
	EventNewMessage        = "new_message"
	EventMessageSent       = "message_sent"
	EventError             = "error"
	EventNewReaction       = "new_reaction"
	EventCameraToggled     = "camera_toggled"
	EventMicrophoneToggled = "microphone_toggled"
)

// Inbound payloads

type JoinPayload struct {
	MeetingID string `json:"meeting_id"`
}

type MessagePayload struct {
	MeetingID string `json:"meeting_id"`
	Message   string `json:"message"`
}

type ReactionPayload struct {
	MeetingID string `json:"meeting_id"`
	Emoji     string `json:"emoji"`
}

type CameraPayload struct {
	MeetingID string `json:"meeting_id"`
	CameraOn  bool   `json:"camera_on"`
}

type MicrophonePayload struct {
	MeetingID string `json:"meeting_id"`
	MicOn     bool   `json:"mic_on"`
}

// Outbound payloads

type ChatHistoryEvent struct {
	Messages []ChatHistoryEntry `json:"messages"`
}

// ChatHistoryEntry is one persisted chat line as replayed to a joiner.
type ChatHistoryEntry struct {
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// PresenceEvent announces a join or leave together with the room's
// updated participant list.
type PresenceEvent struct {
	UserName     string        `json:"user_name"`
	Message      string        `json:"message"`
	Participants []Participant `json:"participants"`
}

type MessageEvent struct {
	ID        string `json:"id"`
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type AckEvent struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorEvent struct {
	Message string `json:"message"`
}

type ReactionEvent struct {
	ID        string `json:"id"`
	UserName  string `json:"user_name"`
	Emoji     string `json:"emoji"`
	Timestamp string `json:"timestamp"`
}

type CameraToggledEvent struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
	CameraOn bool   `json:"camera_on"`
}

type MicrophoneToggledEvent struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
	MicOn    bool   `json:"mic_on"`
}
