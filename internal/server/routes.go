package server

import (
	"time"

	"github.com/biz365/admin-api/internal/apikey"
	"github.com/biz365/admin-api/internal/auditlog"
	"github.com/biz365/admin-api/internal/auth"
	"github.com/biz365/admin-api/internal/backup"
	"github.com/biz365/admin-api/internal/emailtemplate"
	"github.com/biz365/admin-api/internal/middleware"
	"github.com/biz365/admin-api/internal/nfctag"
	"github.com/biz365/admin-api/internal/role"
	"github.com/biz365/admin-api/internal/search"
	"github.com/biz365/admin-api/internal/settings"
	"github.com/biz365/admin-api/internal/store"
	"github.com/biz365/admin-api/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Admin API is running",
		})
	})

	// Public NFC scan endpoint
	app.Get("/t/:uid", nfctag.RecordHitHandler)

	// ==========================================
	// AUTH ROUTES (No authentication required)
	// ==========================================
	authGroup := app.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.LoginHandler)
	authGroup.Get("/google/login", auth.GoogleLogin)
	authGroup.Get("/google/callback", auth.GoogleCallback)
	authGroup.Post("/logout", auth.JWTProtected(), auth.LogoutHandler)
	authGroup.Get("/me", auth.JWTProtected(), auth.MeHandler)

	// ==========================================
	// USER MANAGEMENT
	// ==========================================
	userGroup := app.Group("/users")
	userGroup.Use(auth.JWTProtected())
	userGroup.Get("/", middleware.PermissionProtected("users", "read"), user.ListUsersHandler)
	userGroup.Get("/:id", middleware.PermissionProtected("users", "read"), user.GetUserHandler)
	userGroup.Post("/", middleware.PermissionProtected("users", "create"), user.CreateUserHandler)
	userGroup.Put("/:id", middleware.PermissionProtected("users", "update"), user.UpdateUserHandler)
	userGroup.Delete("/:id", middleware.PermissionProtected("users", "delete"), user.DeleteUserHandler)

	// ==========================================
	// NFC TAG MANAGEMENT
	// ==========================================
	tagGroup := app.Group("/nfc-tags")
	tagGroup.Use(auth.JWTProtected())
	tagGroup.Get("/", middleware.PermissionProtected("nfc-tags", "read"), nfctag.ListNfcTagsHandler)
	tagGroup.Get("/:id", middleware.PermissionProtected("nfc-tags", "read"), nfctag.GetNfcTagHandler)
	tagGroup.Post("/", middleware.PermissionProtected("nfc-tags", "create"), nfctag.CreateNfcTagHandler)
	tagGroup.Put("/:id", middleware.PermissionProtected("nfc-tags", "update"), nfctag.UpdateNfcTagHandler)
	tagGroup.Delete("/:id", middleware.PermissionProtected("nfc-tags", "delete"), nfctag.DeleteNfcTagHandler)

	// ==========================================
	// STORE MANAGEMENT
	// ==========================================
	storeGroup := app.Group("/stores")
	storeGroup.Use(auth.JWTProtected())
	storeGroup.Get("/", middleware.PermissionProtected("stores", "read"), store.ListStoresHandler)
	storeGroup.Get("/:id", middleware.PermissionProtected("stores", "read"), store.GetStoreHandler)
	storeGroup.Post("/", middleware.PermissionProtected("stores", "create"), store.CreateStoreHandler)
	storeGroup.Put("/:id", middleware.PermissionProtected("stores", "update"), store.UpdateStoreHandler)
	storeGroup.Delete("/:id", middleware.PermissionProtected("stores", "delete"), store.DeleteStoreHandler)

	// ==========================================
	// SETTINGS
	// ==========================================
	settingsGroup := app.Group("/settings")
	settingsGroup.Use(auth.JWTProtected())
	settingsGroup.Get("/", middleware.PermissionProtected("settings", "read"), settings.GetSettingsHandler)
	settingsGroup.Put("/", middleware.PermissionProtected("settings", "update"), settings.ReplaceSettingsHandler)

	// ==========================================
	// ADMIN (admin role required)
	// ==========================================
	adminGroup := app.Group("/admin")
	adminGroup.Use(auth.JWTProtected())
	adminGroup.Use(auth.RoleProtected("admin", "super_admin"))

	adminGroup.Get("/search", search.GlobalSearchHandler)

	adminGroup.Get("/roles", role.ListRolesHandler)
	adminGroup.Get("/roles/:id", role.GetRoleHandler)
	adminGroup.Post("/roles", role.CreateRoleHandler)
	adminGroup.Put("/roles/:id", role.UpdateRoleHandler)
	adminGroup.Delete("/roles/:id", role.DeleteRoleHandler)
	adminGroup.Get("/roles/:id/permissions", role.GetRolePermissionsHandler)
	adminGroup.Post("/roles/:id/permissions", role.UpdateRolePermissionsHandler)

	adminGroup.Get("/permissions", role.ListPermissionsHandler)

	adminGroup.Get("/logs", auditlog.ListLogsHandler)
	adminGroup.Post("/logs/bulk-delete", auditlog.BulkDeleteLogsHandler)
	adminGroup.Get("/logs/:id", auditlog.GetLogHandler)
	adminGroup.Delete("/logs/:id", auditlog.DeleteLogHandler)

	adminGroup.Get("/api-keys", apikey.ListApiKeysHandler)
	adminGroup.Post("/api-keys", apikey.CreateApiKeyHandler)
	adminGroup.Delete("/api-keys/:id", apikey.RevokeApiKeyHandler)

	adminGroup.Get("/backups", backup.ListBackupsHandler)
	adminGroup.Post("/backups", backup.CreateBackupHandler)
	adminGroup.Delete("/backups/:id", backup.DeleteBackupHandler)

	adminGroup.Get("/email-templates", emailtemplate.ListEmailTemplatesHandler)
	adminGroup.Get("/email-templates/:id", emailtemplate.GetEmailTemplateHandler)
	adminGroup.Post("/email-templates", emailtemplate.CreateEmailTemplateHandler)
	adminGroup.Put("/email-templates/:id", emailtemplate.UpdateEmailTemplateHandler)
	adminGroup.Delete("/email-templates/:id", emailtemplate.DeleteEmailTemplateHandler)
}
