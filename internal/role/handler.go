package role

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/schema"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// userCount resolves how many users currently hold the role. Custom
// roles have no user role value mapped onto them and count as zero.
func userCount(db *gorm.DB, roleName string) int64 {
	values := UserRoleValues(roleName)
	if len(values) == 0 {
		return 0
	}
	var n int64
	db.Model(&models.User{}).Where("role IN ?", values).Count(&n)
	return n
}

func ListRolesHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.Role{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if level := c.Query("level"); level != "" {
		q = q.Where("level = ?", level)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count roles")
	}

	var roles []models.Role
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"name", "level", "status", "created_at", "updated_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&roles).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch roles")
	}

	for i := range roles {
		roles[i].UserCount = userCount(database.DB, roles[i].Name)
	}

	return response.SuccessWithMeta(c, roles, response.CalculateMeta(page, limit, total), "Roles retrieved successfully")
}

func GetRoleHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid role ID", nil)
	}

	var role models.Role
	if err := database.DB.Preload("Permissions").First(&role, id).Error; err != nil {
		return response.NotFound(c, "Role")
	}
	role.UserCount = userCount(database.DB, role.Name)

	return response.Success(c, role, "Role retrieved successfully")
}

func CreateRoleHandler(c *fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Level       string `json:"level"`
		Status      string `json:"status"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if problems := schema.Validate("roles", fiber.Map{
		"name":        body.Name,
		"description": body.Description,
		"level":       body.Level,
		"status":      body.Status,
	}); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	var existing models.Role
	if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
		return response.Conflict(c, "Role with this name already exists")
	}

	role := models.Role{
		Name:        body.Name,
		Description: body.Description,
		Level:       body.Level,
		Status:      body.Status,
	}

	if err := database.DB.Create(&role).Error; err != nil {
		return response.InternalError(c, "Failed to create role")
	}

	return response.Created(c, role, "Role created successfully")
}

func UpdateRoleHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid role ID", nil)
	}

	var role models.Role
	if err := database.DB.First(&role, id).Error; err != nil {
		return response.NotFound(c, "Role")
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	merged := fiber.Map{
		"name":        role.Name,
		"description": role.Description,
		"level":       role.Level,
		"status":      role.Status,
	}
	updates := map[string]any{}
	for _, key := range []string{"name", "description", "level", "status"} {
		if v, ok := body[key]; ok {
			merged[key] = v
			updates[key] = v
		}
	}

	if problems := schema.Validate("roles", merged); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	if err := database.DB.Model(&role).Updates(updates).Error; err != nil {
		return response.InternalError(c, "Failed to update role")
	}

	database.DB.First(&role, id)
	return response.Success(c, role, "Role updated successfully")
}

// DeleteRoleHandler refuses while users still hold the role; nothing
// cascades.
func DeleteRoleHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid role ID", nil)
	}

	var role models.Role
	if err := database.DB.First(&role, id).Error; err != nil {
		return response.NotFound(c, "Role")
	}

	if userCount(database.DB, role.Name) > 0 {
		return response.Conflict(c, "Role is still assigned to users")
	}

	if err := database.DB.Where("role_id = ?", role.ID).Delete(&models.RolePermission{}).Error; err != nil {
		return response.InternalError(c, "Failed to delete role grants")
	}
	if err := database.DB.Delete(&role).Error; err != nil {
		return response.InternalError(c, "Failed to delete role")
	}

	return response.Success(c, nil, "Role deleted successfully")
}

func GetRolePermissionsHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid role ID", nil)
	}

	var role models.Role
	if err := database.DB.Preload("Permissions").First(&role, id).Error; err != nil {
		return response.NotFound(c, "Role")
	}

	return response.Success(c, role.Permissions, "Role permissions retrieved successfully")
}

// UpdateRolePermissionsHandler grants or revokes one permission. Both
// directions are idempotent: a duplicate grant and a revoke of an
// ungranted permission succeed without changing anything.
func UpdateRolePermissionsHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid role ID", nil)
	}

	var body struct {
		PermissionID uint   `json:"permission_id"`
		Action       string `json:"action"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	if body.PermissionID == 0 {
		return response.BadRequest(c, "permission_id is required", nil)
	}
	if body.Action != "grant" && body.Action != "revoke" {
		return response.BadRequest(c, "action must be grant or revoke", nil)
	}

	var role models.Role
	if err := database.DB.First(&role, id).Error; err != nil {
		return response.NotFound(c, "Role")
	}
	var perm models.Permission
	if err := database.DB.First(&perm, body.PermissionID).Error; err != nil {
		return response.NotFound(c, "Permission")
	}

	join := models.RolePermission{RoleID: role.ID, PermissionID: perm.ID}
	if body.Action == "grant" {
		if err := database.DB.Where(&join).FirstOrCreate(&models.RolePermission{}, join).Error; err != nil {
			return response.InternalError(c, "Failed to grant permission")
		}
	} else {
		if err := database.DB.Where(&join).Delete(&models.RolePermission{}).Error; err != nil {
			return response.InternalError(c, "Failed to revoke permission")
		}
	}

	database.DB.Preload("Permissions").First(&role, id)
	return response.Success(c, role.Permissions, "Role permissions updated successfully")
}

func ListPermissionsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.Permission{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if resource := c.Query("resource"); resource != "" {
		q = q.Where("resource = ?", resource)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action LIKE ?", "%"+action+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count permissions")
	}

	var perms []models.Permission
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"name", "resource", "action", "created_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&perms).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch permissions")
	}

	return response.SuccessWithMeta(c, perms, response.CalculateMeta(page, limit, total), "Permissions retrieved successfully")
}
