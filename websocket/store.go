package websocket

import (
	"errors"

	"github.com/meetly/meeting_backend/database"
	"github.com/meetly/meeting_backend/models"
	"gorm.io/gorm"
)

// Store is the persistence surface the realtime engine depends on. The
// engine never touches the database directly, which keeps every handler
// testable against a fake.
type Store interface {
	// FindUserByID returns nil without error when the user does not exist.
	FindUserByID(id uint) (*models.User, error)
	// FindMeetingByID returns nil without error when the meeting does not exist.
	FindMeetingByID(id string) (*models.Meeting, error)
	// AppendChatMessage persists one chat line. Fire-and-forget from the
	// engine's point of view: failures are logged, never surfaced to peers.
	AppendChatMessage(meetingID string, userID uint, userName, text string) error
	// LoadChatHistory returns the meeting's chat lines in ascending
	// timestamp order.
	LoadChatHistory(meetingID string) ([]ChatHistoryEntry, error)
}

// GormStore backs Store with the shared gorm connection.
type GormStore struct{}

func (GormStore) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (GormStore) FindMeetingByID(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := database.DB.First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (GormStore) AppendChatMessage(meetingID string, userID uint, userName, text string) error {
	msg := models.ChatMessage{
		MeetingID: meetingID,
		UserID:    userID,
		UserName:  userName,
		Message:   text,
	}
	return database.DB.Create(&msg).Error
}

func (GormStore) LoadChatHistory(meetingID string) ([]ChatHistoryEntry, error) {
	var rows []models.ChatMessage
	if err := database.DB.Where("meeting_id = ?", meetingID).
		Order("timestamp ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	history := make([]ChatHistoryEntry, 0, len(rows))
	for _, row := range rows {
		history = append(history, ChatHistoryEntry{
			UserName:  row.UserName,
			Message:   row.Message,
			Timestamp: row.Timestamp.Format("15:04:05"),
		})
	}
	return history, nil
}
