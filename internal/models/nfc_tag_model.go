package models

import (
	"time"

	"gorm.io/gorm"
)

// Status values: active, inactive, pending.
type NfcTag struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StoreID   string         `gorm:"size:100;index" json:"store_id"`
	UID       string         `gorm:"size:16;uniqueIndex" json:"uid"`
	Title     string         `gorm:"size:255" json:"title"`
	TargetURL string         `gorm:"size:2048" json:"target_url"`
	Status    string         `gorm:"size:20;default:'pending'" json:"status"`
	HitCount  int64          `gorm:"default:0" json:"hit_count"`
	LastHit   *time.Time     `json:"last_hit"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
