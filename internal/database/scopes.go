package database

import (
	"time"

	"gorm.io/gorm"
)

// Paginate is the shared list scope: 1-indexed, capped at 100 per page.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// ParseTime accepts the two date formats list filters arrive in.
func ParseTime(s string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

// OrderClause whitelists the sort column so query values never reach
// the ORDER BY raw. Anything not "asc" sorts descending.
func OrderClause(field, order string, allowed ...string) string {
	ok := false
	for _, a := range allowed {
		if a == field {
			ok = true
			break
		}
	}
	if !ok {
		field = "created_at"
	}
	if order != "asc" {
		order = "desc"
	}
	return field + " " + order
}
