// Package auditlog serves the system log endpoints. Rows are written by
// the rest of the backend (auth, admin actions); this package only
// reads and deletes them.
package auditlog

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

func ListLogsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.LogEntry{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("message LIKE ? OR action LIKE ? OR user_email LIKE ? OR ip_address LIKE ?", like, like, like, like)
	}
	if level := c.Query("level"); level != "" {
		q = q.Where("level = ?", level)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action LIKE ?", "%"+action+"%")
	}
	if from, ok := database.ParseTime(c.Query("date_from")); ok {
		q = q.Where("timestamp >= ?", from)
	}
	if to, ok := database.ParseTime(c.Query("date_to")); ok {
		q = q.Where("timestamp <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count logs")
	}

	var logs []models.LogEntry
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"timestamp", "level", "action", "user_email")).
		Scopes(database.Paginate(page, limit)).
		Find(&logs).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch logs")
	}

	return response.SuccessWithMeta(c, logs, response.CalculateMeta(page, limit, total), "Logs retrieved successfully")
}

func GetLogHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid log ID", nil)
	}

	var entry models.LogEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		return response.NotFound(c, "Log entry")
	}

	return response.Success(c, entry, "Log entry retrieved successfully")
}

func DeleteLogHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid log ID", nil)
	}

	var entry models.LogEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		return response.NotFound(c, "Log entry")
	}

	if err := database.DB.Delete(&entry).Error; err != nil {
		return response.InternalError(c, "Failed to delete log entry")
	}

	return response.Success(c, nil, "Log entry deleted successfully")
}

// BulkDeleteLogsHandler removes every listed id in one statement and
// reports how many rows actually went away.
func BulkDeleteLogsHandler(c *fiber.Ctx) error {
	var body struct {
		IDs []uint `json:"ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	if len(body.IDs) == 0 {
		return response.BadRequest(c, "ids must be a non-empty array", nil)
	}

	result := database.DB.Where("id IN ?", body.IDs).Delete(&models.LogEntry{})
	if result.Error != nil {
		return response.InternalError(c, "Failed to delete log entries")
	}

	return response.Success(c, fiber.Map{"deleted": result.RowsAffected}, "Log entries deleted successfully")
}
