package models

import (
	"time"
)

const (
	MeetingStatusActive    = "active"
	MeetingStatusScheduled = "scheduled"
)

// Meeting is keyed by its 10-digit numeric ID rather than an
// auto-incremented integer so the ID on the wire is the primary key.
type Meeting struct {
	ID            string    `gorm:"primaryKey;size:10" json:"id"`
	Title         string    `gorm:"size:255" json:"title"`
	HostID        uint      `json:"host_id"`
	Host          User      `gorm:"foreignKey:HostID" json:"host,omitempty"`
	HostName      string    `gorm:"size:255;not null" json:"host_name"`
	ScheduledTime string    `gorm:"size:64" json:"scheduled_time"`
	Status        string    `gorm:"size:20;default:'active'" json:"status"` // active, scheduled
	CreatedAt     time.Time `json:"created_at"`
}
