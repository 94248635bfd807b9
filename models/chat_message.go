package models

import (
	"time"
)

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MeetingID string    `gorm:"size:10;not null;index" json:"meeting_id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `gorm:"size:255;not null" json:"user_name"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
