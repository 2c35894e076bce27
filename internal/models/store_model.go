package models

import (
	"time"

	"gorm.io/gorm"
)

// Status values: active, inactive, suspended, pending_approval.
type Store struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:255" json:"name"`
	Slug         string         `gorm:"size:100;uniqueIndex" json:"slug"`
	Description  string         `json:"description,omitempty"`
	WebsiteURL   string         `gorm:"size:2048" json:"website_url,omitempty"`
	Phone        string         `gorm:"size:30" json:"phone,omitempty"`
	Email        string         `gorm:"size:100" json:"email,omitempty"`
	AddressLine1 string         `gorm:"size:255" json:"address_line1,omitempty"`
	City         string         `gorm:"size:100" json:"city,omitempty"`
	State        string         `gorm:"size:100" json:"state,omitempty"`
	Country      string         `gorm:"size:100" json:"country,omitempty"`
	PostalCode   string         `gorm:"size:20" json:"postal_code,omitempty"`
	Timezone     string         `gorm:"size:64" json:"timezone,omitempty"`
	Currency     string         `gorm:"size:3" json:"currency,omitempty"`
	Status       string         `gorm:"size:30;default:'pending_approval'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
