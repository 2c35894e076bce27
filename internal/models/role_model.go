package models

import (
	"time"

	"gorm.io/gorm"
)

// Level values: admin, manager, user, guest. UserCount is derived per
// request from the users currently holding the role; it is never stored.
type Role struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;uniqueIndex" json:"name"`
	Description string         `json:"description,omitempty"`
	Level       string         `gorm:"size:20;default:'user'" json:"level"`
	Status      string         `gorm:"size:20;default:'active'" json:"status"`
	UserCount   int64          `gorm:"-" json:"user_count"`
	Permissions []Permission   `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Name follows the resource.action convention, e.g. "users.create".
type Permission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex" json:"name"`
	Description string    `json:"description,omitempty"`
	Resource    string    `gorm:"size:50;index:idx_resource_action" json:"resource"`
	Action      string    `gorm:"size:50;index:idx_resource_action" json:"action"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Join rows are written directly for grant/revoke so the operations stay
// idempotent.
type RolePermission struct {
	RoleID       uint `gorm:"primaryKey" json:"role_id"`
	PermissionID uint `gorm:"primaryKey" json:"permission_id"`
}
