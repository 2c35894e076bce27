// Package emailtemplate manages the transactional email bodies. HTML is
// sanitized on the way in; templates referenced by name from the
// settings document.
package emailtemplate

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/schema"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

func ListEmailTemplatesHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.EmailTemplate{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR subject LIKE ?", like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count email templates")
	}

	var templates []models.EmailTemplate
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"name", "subject", "status", "created_at", "updated_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&templates).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch email templates")
	}

	return response.SuccessWithMeta(c, templates, response.CalculateMeta(page, limit, total), "Email templates retrieved successfully")
}

func GetEmailTemplateHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid template ID", nil)
	}

	var tpl models.EmailTemplate
	if err := database.DB.First(&tpl, id).Error; err != nil {
		return response.NotFound(c, "Email template")
	}

	return response.Success(c, tpl, "Email template retrieved successfully")
}

func CreateEmailTemplateHandler(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Subject  string `json:"subject"`
		BodyHTML string `json:"body_html"`
		Status   string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if problems := schema.Validate("email_templates", fiber.Map{
		"name":      body.Name,
		"subject":   body.Subject,
		"body_html": body.BodyHTML,
		"status":    body.Status,
	}); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	var existing models.EmailTemplate
	if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
		return response.Conflict(c, "Email template with this name already exists")
	}

	tpl := models.EmailTemplate{
		Name:     body.Name,
		Subject:  body.Subject,
		BodyHTML: sanitizer.Sanitize(body.BodyHTML),
		Status:   body.Status,
	}
	if err := database.DB.Create(&tpl).Error; err != nil {
		return response.InternalError(c, "Failed to create email template")
	}

	return response.Created(c, tpl, "Email template created successfully")
}

func UpdateEmailTemplateHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid template ID", nil)
	}

	var tpl models.EmailTemplate
	if err := database.DB.First(&tpl, id).Error; err != nil {
		return response.NotFound(c, "Email template")
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	merged := fiber.Map{
		"name":      tpl.Name,
		"subject":   tpl.Subject,
		"body_html": tpl.BodyHTML,
		"status":    tpl.Status,
	}
	updates := map[string]any{}
	for _, key := range []string{"name", "subject", "body_html", "status"} {
		if v, ok := body[key]; ok {
			merged[key] = v
			updates[key] = v
		}
	}
	if html, ok := updates["body_html"].(string); ok {
		updates["body_html"] = sanitizer.Sanitize(html)
		merged["body_html"] = updates["body_html"]
	}

	if problems := schema.Validate("email_templates", merged); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	if err := database.DB.Model(&tpl).Updates(updates).Error; err != nil {
		return response.InternalError(c, "Failed to update email template")
	}

	database.DB.First(&tpl, id)
	return response.Success(c, tpl, "Email template updated successfully")
}

func DeleteEmailTemplateHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid template ID", nil)
	}

	var tpl models.EmailTemplate
	if err := database.DB.First(&tpl, id).Error; err != nil {
		return response.NotFound(c, "Email template")
	}

	if err := database.DB.Delete(&tpl).Error; err != nil {
		return response.InternalError(c, "Failed to delete email template")
	}

	return response.Success(c, nil, "Email template deleted successfully")
}
