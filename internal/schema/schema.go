// Package schema declares the editable field sets for every admin
// entity. The mock data layer validates create and update payloads
// against these before writing anything.
package schema

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Field kinds. Declared, never inferred from values.
const (
	KindText      = "text"
	KindTextarea  = "textarea"
	KindEmail     = "email"
	KindURL       = "url"
	KindNumber    = "number"
	KindBool      = "bool"
	KindEnum      = "enum"
	KindTimestamp = "timestamp"
	KindPassword  = "password"
)

type Field struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Kind      string   `json:"kind"`
	Required  bool     `json:"required"`
	MaxLength int      `json:"max_length,omitempty"`
	Options   []string `json:"options,omitempty"`
}

var userFields = []Field{
	{Key: "email", Label: "Email Address", Kind: KindEmail, Required: true},
	{Key: "first_name", Label: "First Name", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "last_name", Label: "Last Name", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "phone", Label: "Phone Number", Kind: KindText},
	{Key: "role", Label: "Role", Kind: KindEnum, Required: true, Options: []string{"customer", "store_owner", "admin", "super_admin"}},
	{Key: "status", Label: "Status", Kind: KindEnum, Required: true, Options: []string{"active", "inactive", "suspended", "pending_verification"}},
}

var nfcTagFields = []Field{
	{Key: "store_id", Label: "Store ID", Kind: KindText, Required: true},
	{Key: "uid", Label: "NFC UID", Kind: KindText, Required: true, MaxLength: 8},
	{Key: "title", Label: "Tag Title", Kind: KindText, Required: true, MaxLength: 255},
	{Key: "target_url", Label: "Target URL", Kind: KindURL, Required: true},
	{Key: "status", Label: "Status", Kind: KindEnum, Required: true, Options: []string{"active", "inactive", "pending"}},
}

var storeFields = []Field{
	{Key: "name", Label: "Store Name", Kind: KindText, Required: true, MaxLength: 255},
	{Key: "slug", Label: "Store Slug", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "description", Label: "Description", Kind: KindTextarea},
	{Key: "website_url", Label: "Website URL", Kind: KindURL},
	{Key: "phone", Label: "Phone Number", Kind: KindText},
	{Key: "email", Label: "Email Address", Kind: KindEmail},
	{Key: "address_line1", Label: "Address Line 1", Kind: KindText, MaxLength: 255},
	{Key: "city", Label: "City", Kind: KindText, MaxLength: 100},
	{Key: "state", Label: "State", Kind: KindText, MaxLength: 100},
	{Key: "country", Label: "Country", Kind: KindText, MaxLength: 100},
	{Key: "postal_code", Label: "Postal Code", Kind: KindText, MaxLength: 20},
	{Key: "timezone", Label: "Timezone", Kind: KindText},
	{Key: "currency", Label: "Currency", Kind: KindText, MaxLength: 3},
	{Key: "status", Label: "Status", Kind: KindEnum, Required: true, Options: []string{"active", "inactive", "suspended", "pending_approval"}},
}

var roleFields = []Field{
	{Key: "name", Label: "Role Name", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "description", Label: "Description", Kind: KindTextarea},
	{Key: "level", Label: "Level", Kind: KindEnum, Required: true, Options: []string{"admin", "manager", "user", "guest"}},
	{Key: "status", Label: "Status", Kind: KindEnum, Required: true, Options: []string{"active", "inactive"}},
}

var permissionFields = []Field{
	{Key: "name", Label: "Permission Name", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "description", Label: "Description", Kind: KindTextarea},
	{Key: "resource", Label: "Resource", Kind: KindEnum, Required: true, Options: []string{"users", "roles", "nfc-tags", "stores", "settings", "logs"}},
	{Key: "action", Label: "Action", Kind: KindEnum, Required: true, Options: []string{"create", "read", "update", "delete"}},
}

var logFields = []Field{
	{Key: "level", Label: "Log Level", Kind: KindEnum, Required: true, Options: []string{"error", "warning", "info", "debug"}},
	{Key: "action", Label: "Action", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "message", Label: "Message", Kind: KindTextarea, Required: true},
	{Key: "user_id", Label: "User ID", Kind: KindText},
	{Key: "ip_address", Label: "IP Address", Kind: KindText},
	{Key: "user_agent", Label: "User Agent", Kind: KindText},
}

var apiKeyFields = []Field{
	{Key: "name", Label: "Key Name", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "status", Label: "Status", Kind: KindEnum, Required: true, Options: []string{"active", "revoked"}},
}

var emailTemplateFields = []Field{
	{Key: "name", Label: "Template Name", Kind: KindText, Required: true, MaxLength: 100},
	{Key: "subject", Label: "Subject", Kind: KindText, Required: true, MaxLength: 255},
	{Key: "body_html", Label: "Body", Kind: KindTextarea, Required: true},
	{Key: "status", Label: "Status", Kind: KindEnum, Required: true, Options: []string{"active", "draft"}},
}

var entities = map[string][]Field{
	"users":           userFields,
	"nfc_tags":        nfcTagFields,
	"stores":          storeFields,
	"roles":           roleFields,
	"permissions":     permissionFields,
	"logs":            logFields,
	"api_keys":        apiKeyFields,
	"email_templates": emailTemplateFields,
}

// ForEntity returns the declared fields for an entity, or nil for an
// unknown one.
func ForEntity(entity string) []Field {
	return entities[entity]
}

// Validate checks a record against an entity's declared fields and
// returns one message per offending field. Unknown entities and unknown
// record keys pass; only declared constraints are enforced.
func Validate(entity string, record map[string]any) map[string]string {
	problems := map[string]string{}

	for _, field := range ForEntity(entity) {
		raw, present := record[field.Key]
		value := asString(raw)

		if field.Required && (!present || value == "") {
			problems[field.Key] = fmt.Sprintf("%s is required", field.Label)
			continue
		}
		if !present || raw == nil || value == "" {
			continue
		}

		if field.MaxLength > 0 && len(value) > field.MaxLength {
			problems[field.Key] = fmt.Sprintf("%s must be at most %d characters", field.Label, field.MaxLength)
			continue
		}

		switch field.Kind {
		case KindEmail:
			if _, err := mail.ParseAddress(value); err != nil {
				problems[field.Key] = fmt.Sprintf("%s must be a valid email address", field.Label)
			}
		case KindURL:
			u, err := url.Parse(value)
			if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
				problems[field.Key] = fmt.Sprintf("%s must be a valid http(s) URL", field.Label)
			}
		case KindEnum:
			if !contains(field.Options, value) {
				problems[field.Key] = fmt.Sprintf("%s must be one of: %s", field.Label, strings.Join(field.Options, ", "))
			}
		case KindNumber:
			if _, ok := raw.(float64); !ok {
				if _, ok := raw.(int); !ok {
					problems[field.Key] = fmt.Sprintf("%s must be a number", field.Label)
				}
			}
		case KindBool:
			if _, ok := raw.(bool); !ok {
				problems[field.Key] = fmt.Sprintf("%s must be true or false", field.Label)
			}
		}
	}

	return problems
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
