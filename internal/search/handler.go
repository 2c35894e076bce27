// Package search implements the admin-wide search box: one term fanned
// out across users, NFC tags, stores and roles, capped per entity so
// the dropdown stays small.
package search

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

const perEntityLimit = 5

func GlobalSearchHandler(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		term = c.Query("search")
	}
	if term == "" {
		return response.BadRequest(c, "search term is required", nil)
	}
	like := "%" + term + "%"

	var users []models.User
	database.DB.
		Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR role LIKE ?", like, like, like, like).
		Limit(perEntityLimit).Find(&users)

	var tags []models.NfcTag
	database.DB.
		Where("uid LIKE ? OR title LIKE ? OR store_id LIKE ?", like, like, like).
		Limit(perEntityLimit).Find(&tags)

	var stores []models.Store
	database.DB.
		Where("name LIKE ? OR slug LIKE ? OR city LIKE ? OR email LIKE ?", like, like, like, like).
		Limit(perEntityLimit).Find(&stores)

	var roles []models.Role
	database.DB.
		Where("name LIKE ? OR description LIKE ?", like, like).
		Limit(perEntityLimit).Find(&roles)

	return response.Success(c, fiber.Map{
		"users":    users,
		"nfc_tags": tags,
		"stores":   stores,
		"roles":    roles,
		"total":    len(users) + len(tags) + len(stores) + len(roles),
	}, "Search completed successfully")
}
