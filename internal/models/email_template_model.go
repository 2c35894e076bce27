package models

import (
	"time"

	"gorm.io/gorm"
)

// BodyHTML is sanitized before persisting. Status values: active, draft.
type EmailTemplate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;uniqueIndex" json:"name"`
	Subject   string         `gorm:"size:255" json:"subject"`
	BodyHTML  string         `json:"body_html"`
	Status    string         `gorm:"size:20;default:'draft'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
