package models

import "time"

// Storage values: local, s3. Status values: in_progress, completed, failed.
type Backup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"size:255" json:"filename"`
	Location  string    `gorm:"size:2048" json:"location"`
	SizeBytes int64     `json:"size_bytes"`
	Storage   string    `gorm:"size:10" json:"storage"`
	Status    string    `gorm:"size:20" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
