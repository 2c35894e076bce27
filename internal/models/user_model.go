package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values: customer, store_owner, admin, super_admin.
// Status values: active, inactive, suspended, pending_verification.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100" json:"email"`
	FirstName string         `gorm:"size:100" json:"first_name"`
	LastName  string         `gorm:"size:100" json:"last_name"`
	Phone     string         `gorm:"size:30" json:"phone,omitempty"`
	Password  string         `gorm:"size:255" json:"-"`
	Provider  string         `gorm:"size:50" json:"provider,omitempty"`
	Role      string         `gorm:"size:30;default:'customer'" json:"role"`
	Status    string         `gorm:"size:30;default:'active'" json:"status"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
