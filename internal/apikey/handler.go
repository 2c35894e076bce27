// Package apikey mints and revokes machine credentials. The raw key
// leaves the server exactly once, in the create response; lookups go
// through the stored hash.
package apikey

import (
	"encoding/json"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func ListApiKeysHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.ApiKey{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR prefix LIKE ?", like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count API keys")
	}

	var keys []models.ApiKey
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"name", "status", "last_used_at", "created_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&keys).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch API keys")
	}

	return response.SuccessWithMeta(c, keys, response.CalculateMeta(page, limit, total), "API keys retrieved successfully")
}

func CreateApiKeyHandler(c *fiber.Ctx) error {
	var body struct {
		Name   string   `json:"name"`
		Scopes []string `json:"scopes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	if body.Name == "" {
		return response.ValidationError(c, map[string]string{"name": "name is required"})
	}

	raw, prefix, hash := utils.GenerateApiKey()

	var scopes datatypes.JSON
	if len(body.Scopes) > 0 {
		encoded, err := json.Marshal(body.Scopes)
		if err != nil {
			return response.InternalError(c, "Failed to encode scopes")
		}
		scopes = datatypes.JSON(encoded)
	}

	key := models.ApiKey{
		Name:    body.Name,
		Prefix:  prefix,
		KeyHash: hash,
		Scopes:  scopes,
		Status:  "active",
	}
	if err := database.DB.Create(&key).Error; err != nil {
		return response.InternalError(c, "Failed to create API key")
	}

	return response.Created(c, fiber.Map{
		"id":         key.ID,
		"name":       key.Name,
		"prefix":     key.Prefix,
		"scopes":     key.Scopes,
		"status":     key.Status,
		"created_at": key.CreatedAt,
		"key":        raw,
	}, "API key created successfully")
}

// RevokeApiKeyHandler flips the status rather than deleting, so audit
// trails can still resolve the prefix.
func RevokeApiKeyHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid API key ID", nil)
	}

	var key models.ApiKey
	if err := database.DB.First(&key, id).Error; err != nil {
		return response.NotFound(c, "API key")
	}

	if err := database.DB.Model(&key).Update("status", "revoked").Error; err != nil {
		return response.InternalError(c, "Failed to revoke API key")
	}

	return response.Success(c, nil, "API key revoked successfully")
}
