// Package settings serves the single-document system configuration.
// The document is replaced wholesale on every update; individual keys
// are never patched server-side.
package settings

import (
	"encoding/json"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func GetSettingsHandler(c *fiber.Ctx) error {
	var setting models.Setting
	if err := database.DB.First(&setting).Error; err != nil {
		return response.Success(c, fiber.Map{}, "Settings retrieved successfully")
	}

	var doc map[string]any
	if err := json.Unmarshal(setting.Data, &doc); err != nil {
		return response.InternalError(c, "Stored settings are corrupt")
	}

	return response.Success(c, doc, "Settings retrieved successfully")
}

func ReplaceSettingsHandler(c *fiber.Ctx) error {
	var doc map[string]any
	if err := c.BodyParser(&doc); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	if doc == nil {
		return response.BadRequest(c, "Settings document is required", nil)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return response.InternalError(c, "Failed to encode settings")
	}

	var setting models.Setting
	if err := database.DB.First(&setting).Error; err != nil {
		setting = models.Setting{Data: datatypes.JSON(raw)}
		if err := database.DB.Create(&setting).Error; err != nil {
			return response.InternalError(c, "Failed to save settings")
		}
	} else {
		if err := database.DB.Model(&setting).Update("data", datatypes.JSON(raw)).Error; err != nil {
			return response.InternalError(c, "Failed to save settings")
		}
	}

	return response.Success(c, doc, "Settings updated successfully")
}
