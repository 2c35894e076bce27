package middleware

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/role"

	"github.com/gofiber/fiber/v2"
)

// PermissionProtected gates a route on a granted permission. Admins skip
// the join; everyone else must hold resource.action through their role.
func PermissionProtected(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(uint)
		if !ok {
			return response.Unauthorized(c, "Authentication required")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return response.Unauthorized(c, "User not found")
		}

		if user.Role == "admin" || user.Role == "super_admin" {
			return c.Next()
		}

		var count int64
		err := database.DB.Model(&models.Permission{}).
			Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
			Joins("JOIN roles r ON r.id = rp.role_id").
			Where("r.name = ? AND permissions.resource = ? AND permissions.action = ?",
				role.NameForUserRole(user.Role), resource, action).
			Count(&count).Error
		if err != nil || count == 0 {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}
