package models

import (
	"time"
)

const (
	RoleHost        = "host"
	RoleParticipant = "participant"
)

// MeetingHistory records one attendance of a user in a meeting, either as
// host (they started it) or as participant (they joined by ID).
type MeetingHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	MeetingID    string    `gorm:"size:10;not null" json:"meeting_id"`
	Role         string    `gorm:"size:20;not null" json:"role"` // host, participant
	MeetingTitle string    `gorm:"size:255" json:"meeting_title"`
	HostName     string    `gorm:"size:255" json:"host_name"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
