package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The raw key is returned once at creation; only its hash is stored.
// Status values: active, revoked.
type ApiKey struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"size:100" json:"name"`
	Prefix     string         `gorm:"size:12;index" json:"prefix"`
	KeyHash    string         `gorm:"size:64;uniqueIndex" json:"-"`
	Scopes     datatypes.JSON `json:"scopes,omitempty"`
	Status     string         `gorm:"size:20;default:'active'" json:"status"`
	LastUsedAt *time.Time     `json:"last_used_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
