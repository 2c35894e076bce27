package mockdata

// Collection keys.
const (
	KeyUsers           = "users"
	KeyNfcTags         = "nfc_tags"
	KeyStores          = "stores"
	KeyRoles           = "roles"
	KeyPermissions     = "permissions"
	KeyLogs            = "logs"
	KeyApiKeys         = "api_keys"
	KeyBackups         = "backups"
	KeyEmailTemplates  = "email_templates"
	KeySettings        = "settings"
	KeyRolePermissions = "role_permissions"
	KeyAuthToken       = "admin_token"
)

func seedCollections() map[string][]Record {
	return map[string][]Record{
		KeyUsers:          seedUsers(),
		KeyNfcTags:        seedNfcTags(),
		KeyStores:         seedStores(),
		KeyRoles:          seedRoles(),
		KeyPermissions:    seedPermissions(),
		KeyLogs:           seedLogs(),
		KeyApiKeys:        seedApiKeys(),
		KeyBackups:        seedBackups(),
		KeyEmailTemplates: seedEmailTemplates(),
	}
}

func seedDocuments() map[string]any {
	return map[string]any{
		KeySettings:        seedSettings(),
		KeyRolePermissions: seedRolePermissions(),
	}
}

func seedUsers() []Record {
	return []Record{
		{
			"id": 1, "email": "john.doe@example.com", "first_name": "John", "last_name": "Doe",
			"phone": "+1234567890", "role": "customer", "status": "active",
			"created_at": "2024-01-15T10:30:00Z", "updated_at": "2024-01-15T10:30:00Z",
			"last_login": "2024-01-20T14:30:00Z",
		},
		{
			"id": 2, "email": "jane.smith@example.com", "first_name": "Jane", "last_name": "Smith",
			"phone": "+1234567891", "role": "store_owner", "status": "active",
			"created_at": "2024-01-14T09:15:00Z", "updated_at": "2024-01-14T09:15:00Z",
			"last_login": "2024-01-20T13:45:00Z",
		},
		{
			"id": 3, "email": "admin@biz365.ai", "first_name": "Admin", "last_name": "User",
			"phone": "+1234567892", "role": "admin", "status": "active",
			"created_at": "2024-01-10T08:00:00Z", "updated_at": "2024-01-10T08:00:00Z",
			"last_login": "2024-01-20T15:00:00Z",
		},
		{
			"id": 4, "email": "bob.wilson@example.com", "first_name": "Bob", "last_name": "Wilson",
			"phone": "+1234567893", "role": "customer", "status": "suspended",
			"created_at": "2024-01-12T11:20:00Z", "updated_at": "2024-01-18T16:30:00Z",
			"last_login": "2024-01-18T16:30:00Z",
		},
		{
			"id": 5, "email": "sarah.johnson@example.com", "first_name": "Sarah", "last_name": "Johnson",
			"phone": "+1234567894", "role": "store_owner", "status": "pending_verification",
			"created_at": "2024-01-19T14:45:00Z", "updated_at": "2024-01-19T14:45:00Z",
			"last_login": nil,
		},
	}
}

func seedNfcTags() []Record {
	return []Record{
		{
			"id": 1, "store_id": "store123", "uid": "ABC12345", "title": "Welcome Page",
			"target_url": "https://biz365.ai/store/123", "status": "active", "hit_count": 1247,
			"created_at": "2024-01-15T10:30:00Z", "updated_at": "2024-01-15T10:30:00Z",
			"last_hit": "2024-01-20T14:30:00Z",
		},
		{
			"id": 2, "store_id": "store456", "uid": "DEF67890", "title": "Menu Page",
			"target_url": "https://biz365.ai/store/456/menu", "status": "active", "hit_count": 892,
			"created_at": "2024-01-14T09:15:00Z", "updated_at": "2024-01-14T09:15:00Z",
			"last_hit": "2024-01-20T13:45:00Z",
		},
		{
			"id": 3, "store_id": "store789", "uid": "GHI01234", "title": "Contact Info",
			"target_url": "https://biz365.ai/store/789/contact", "status": "inactive", "hit_count": 156,
			"created_at": "2024-01-12T11:20:00Z", "updated_at": "2024-01-18T16:30:00Z",
			"last_hit": "2024-01-18T16:30:00Z",
		},
		{
			"id": 4, "store_id": "store101", "uid": "JKL56789", "title": "Special Offers",
			"target_url": "https://biz365.ai/store/101/offers", "status": "pending", "hit_count": 45,
			"created_at": "2024-01-19T14:45:00Z", "updated_at": "2024-01-19T14:45:00Z",
			"last_hit": nil,
		},
	}
}

func seedStores() []Record {
	return []Record{
		{
			"id": 1, "name": "Coffee Shop ABC", "slug": "coffee-shop-abc",
			"description": "Premium coffee and pastries in downtown",
			"website_url": "https://coffeeshopabc.com", "phone": "+1234567890",
			"email": "info@coffeeshopabc.com", "address_line1": "123 Main Street",
			"city": "New York", "state": "NY", "country": "USA", "postal_code": "10001",
			"timezone": "America/New_York", "currency": "USD", "status": "active",
			"created_at": "2024-01-15T10:30:00Z", "updated_at": "2024-01-15T10:30:00Z",
		},
		{
			"id": 2, "name": "Restaurant XYZ", "slug": "restaurant-xyz",
			"description": "Fine dining experience with local ingredients",
			"website_url": "https://restaurantxyz.com", "phone": "+1234567891",
			"email": "contact@restaurantxyz.com", "address_line1": "456 Oak Avenue",
			"city": "Los Angeles", "state": "CA", "country": "USA", "postal_code": "90210",
			"timezone": "America/Los_Angeles", "currency": "USD", "status": "active",
			"created_at": "2024-01-14T09:15:00Z", "updated_at": "2024-01-14T09:15:00Z",
		},
		{
			"id": 3, "name": "Retail Store 123", "slug": "retail-store-123",
			"description": "Fashion and accessories for modern lifestyle",
			"website_url": "https://retailstore123.com", "phone": "+1234567892",
			"email": "hello@retailstore123.com", "address_line1": "789 Fashion Blvd",
			"city": "Chicago", "state": "IL", "country": "USA", "postal_code": "60601",
			"timezone": "America/Chicago", "currency": "USD", "status": "inactive",
			"created_at": "2024-01-12T11:20:00Z", "updated_at": "2024-01-18T16:30:00Z",
		},
	}
}

func seedRoles() []Record {
	return []Record{
		{
			"id": 1, "name": "Super Admin", "description": "Full system access with all permissions",
			"level": "admin", "status": "active", "user_count": 2,
			"created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z",
		},
		{
			"id": 2, "name": "Store Manager", "description": "Manage store operations and staff",
			"level": "manager", "status": "active", "user_count": 15,
			"created_at": "2024-01-05T10:00:00Z", "updated_at": "2024-01-05T10:00:00Z",
		},
		{
			"id": 3, "name": "Customer", "description": "Standard customer access",
			"level": "user", "status": "active", "user_count": 1247,
			"created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z",
		},
		{
			"id": 4, "name": "Store Owner", "description": "Business owner with store management access",
			"level": "manager", "status": "active", "user_count": 89,
			"created_at": "2024-01-03T12:00:00Z", "updated_at": "2024-01-03T12:00:00Z",
		},
	}
}

func seedPermissions() []Record {
	perms := []Record{}
	id := 1
	add := func(resource, action, description string) {
		perms = append(perms, Record{
			"id":          id,
			"name":        resource + "." + action,
			"description": description,
			"resource":    resource,
			"action":      action,
		})
		id++
	}

	add("users", "create", "Create new user accounts")
	add("users", "read", "View user account information")
	add("users", "update", "Update user account information")
	add("users", "delete", "Delete user accounts")
	add("nfc-tags", "create", "Create new NFC tags")
	add("nfc-tags", "read", "View NFC tag information")
	add("nfc-tags", "update", "Update NFC tag configuration")
	add("nfc-tags", "delete", "Delete NFC tags")
	add("stores", "create", "Create new stores")
	add("stores", "read", "View store information")
	add("stores", "update", "Update store information")
	add("stores", "delete", "Delete stores")
	add("settings", "read", "View system settings")
	add("settings", "update", "Update system settings")
	add("logs", "read", "View system logs")
	add("logs", "delete", "Delete system logs")

	return perms
}

func seedLogs() []Record {
	return []Record{
		{
			"id": 1, "level": "info", "action": "user.login", "message": "User logged in successfully",
			"user_id": 1, "user_email": "john.doe@example.com", "ip_address": "192.168.1.100",
			"user_agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			"timestamp":  "2024-01-20T14:30:00Z",
			"metadata":   Record{"session_id": "sess_123456", "login_method": "email"},
		},
		{
			"id": 2, "level": "warning", "action": "user.failed_login", "message": "Failed login attempt",
			"user_id": nil, "user_email": "unknown@example.com", "ip_address": "192.168.1.101",
			"user_agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
			"timestamp":  "2024-01-20T14:25:00Z",
			"metadata":   Record{"reason": "invalid_password", "attempts": 3},
		},
		{
			"id": 3, "level": "info", "action": "nfc.scan", "message": "NFC tag scanned successfully",
			"user_id": 2, "user_email": "jane.smith@example.com", "ip_address": "192.168.1.102",
			"user_agent": "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15",
			"timestamp":  "2024-01-20T14:20:00Z",
			"metadata":   Record{"tag_id": "ABC12345", "store_id": "store123"},
		},
		{
			"id": 4, "level": "error", "action": "system.error", "message": "Database connection timeout",
			"user_id": nil, "user_email": nil, "ip_address": "127.0.0.1",
			"user_agent": "System", "timestamp": "2024-01-20T14:15:00Z",
			"metadata": Record{"error_code": "DB_TIMEOUT", "duration": 30000},
		},
		{
			"id": 5, "level": "info", "action": "admin.settings_update", "message": "System settings updated",
			"user_id": 3, "user_email": "admin@biz365.ai", "ip_address": "192.168.1.103",
			"user_agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			"timestamp":  "2024-01-20T14:10:00Z",
			"metadata":   Record{"settings_changed": []string{"app_name", "maintenance_mode"}},
		},
	}
}

func seedApiKeys() []Record {
	return []Record{
		{
			"id": 1, "name": "Dashboard Integration", "prefix": "bz_1a2b3c4",
			"scopes": []string{"users.read", "stores.read"}, "status": "active",
			"last_used_at": "2024-01-20T12:00:00Z",
			"created_at":   "2024-01-05T09:00:00Z", "updated_at": "2024-01-05T09:00:00Z",
		},
		{
			"id": 2, "name": "Reporting Service", "prefix": "bz_9f8e7d6",
			"scopes": []string{"logs.read"}, "status": "revoked",
			"last_used_at": nil,
			"created_at":   "2024-01-08T11:30:00Z", "updated_at": "2024-01-15T10:00:00Z",
		},
	}
}

func seedBackups() []Record {
	return []Record{
		{
			"id": 1, "filename": "20240118-020000-a1b2c3d4.tar.gz", "size_bytes": 10485760,
			"storage": "local", "status": "completed", "created_at": "2024-01-18T02:00:00Z",
		},
		{
			"id": 2, "filename": "20240119-020000-e5f6a7b8.tar.gz", "size_bytes": 10551296,
			"storage": "s3", "status": "completed", "created_at": "2024-01-19T02:00:00Z",
		},
	}
}

func seedEmailTemplates() []Record {
	return []Record{
		{
			"id": 1, "name": "welcome", "subject": "Welcome to Biz365",
			"body_html": "<h1>Welcome!</h1><p>Your account is ready.</p>", "status": "active",
			"created_at": "2024-01-02T08:00:00Z", "updated_at": "2024-01-02T08:00:00Z",
		},
		{
			"id": 2, "name": "password_reset", "subject": "Reset your password",
			"body_html": "<p>Click the link below to reset your password.</p>", "status": "active",
			"created_at": "2024-01-02T08:05:00Z", "updated_at": "2024-01-02T08:05:00Z",
		},
		{
			"id": 3, "name": "store_approved", "subject": "Your store has been approved",
			"body_html": "<p>Congratulations, your store is live.</p>", "status": "draft",
			"created_at": "2024-01-06T13:00:00Z", "updated_at": "2024-01-06T13:00:00Z",
		},
	}
}

func seedSettings() Record {
	return Record{
		"app_name":                    "Biz365 Platform",
		"app_version":                 "1.0.0",
		"maintenance_mode":            false,
		"registration_enabled":        true,
		"email_verification_required": true,
		"oauth_providers": Record{
			"google": Record{
				"enabled":       true,
				"client_id":     "google-client-id-123456789",
				"client_secret": "google-client-secret-abcdef",
			},
			"apple": Record{
				"enabled":       true,
				"client_id":     "apple-client-id-987654321",
				"client_secret": "apple-client-secret-fedcba",
			},
		},
		"nfc_settings": Record{
			"base_url":    "https://nfc.biz365.ai",
			"timeout":     5000,
			"max_retries": 3,
		},
		"email_settings": Record{
			"smtp_host":     "smtp.gmail.com",
			"smtp_port":     587,
			"smtp_user":     "noreply@biz365.ai",
			"smtp_password": "smtp-password-secret",
		},
	}
}

// Inverted role→permission map, JSON object keys are role ids as strings.
func seedRolePermissions() map[string][]int {
	return map[string][]int{
		"1": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		"2": {2, 6, 10, 13},
		"3": {2, 6, 10},
		"4": {2, 6, 9, 10, 11},
	}
}
