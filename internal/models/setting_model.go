package models

import (
	"time"

	"gorm.io/datatypes"
)

// Settings are a single document replaced wholesale on update. One row,
// nested values (oauth_providers, nfc_settings, email_settings) live in
// the JSON column.
type Setting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}
