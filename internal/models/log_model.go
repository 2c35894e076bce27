package models

import (
	"time"

	"gorm.io/datatypes"
)

// Level values: error, warning, info, debug.
type LogEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Level     string         `gorm:"size:20;index" json:"level"`
	Action    string         `gorm:"size:100;index" json:"action"`
	Message   string         `json:"message"`
	UserID    *uint          `json:"user_id"`
	UserEmail string         `gorm:"size:100" json:"user_email,omitempty"`
	IPAddress string         `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string         `gorm:"size:512" json:"user_agent,omitempty"`
	Timestamp time.Time      `gorm:"index" json:"timestamp"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
}
