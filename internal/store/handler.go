package store

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/schema"
	"github.com/gofiber/fiber/v2"
)

var editableFields = []string{
	"name", "slug", "description", "website_url", "phone", "email",
	"address_line1", "city", "state", "country", "postal_code",
	"timezone", "currency", "status",
}

func ListStoresHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.Store{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR slug LIKE ? OR city LIKE ? OR email LIKE ?", like, like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count stores")
	}

	var stores []models.Store
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"name", "slug", "city", "country", "status", "created_at", "updated_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&stores).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch stores")
	}

	return response.SuccessWithMeta(c, stores, response.CalculateMeta(page, limit, total), "Stores retrieved successfully")
}

func GetStoreHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid store ID", nil)
	}

	var s models.Store
	if err := database.DB.First(&s, id).Error; err != nil {
		return response.NotFound(c, "Store")
	}

	return response.Success(c, s, "Store retrieved successfully")
}

func CreateStoreHandler(c *fiber.Ctx) error {
	var body struct {
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		Description  string `json:"description"`
		WebsiteURL   string `json:"website_url"`
		Phone        string `json:"phone"`
		Email        string `json:"email"`
		AddressLine1 string `json:"address_line1"`
		City         string `json:"city"`
		State        string `json:"state"`
		Country      string `json:"country"`
		PostalCode   string `json:"postal_code"`
		Timezone     string `json:"timezone"`
		Currency     string `json:"currency"`
		Status       string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if problems := schema.Validate("stores", fiber.Map{
		"name": body.Name, "slug": body.Slug, "description": body.Description,
		"website_url": body.WebsiteURL, "phone": body.Phone, "email": body.Email,
		"address_line1": body.AddressLine1, "city": body.City, "state": body.State,
		"country": body.Country, "postal_code": body.PostalCode,
		"timezone": body.Timezone, "currency": body.Currency, "status": body.Status,
	}); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	var existing models.Store
	if err := database.DB.Where("slug = ?", body.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Store with this slug already exists")
	}

	s := models.Store{
		Name:         body.Name,
		Slug:         body.Slug,
		Description:  body.Description,
		WebsiteURL:   body.WebsiteURL,
		Phone:        body.Phone,
		Email:        body.Email,
		AddressLine1: body.AddressLine1,
		City:         body.City,
		State:        body.State,
		Country:      body.Country,
		PostalCode:   body.PostalCode,
		Timezone:     body.Timezone,
		Currency:     body.Currency,
		Status:       body.Status,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		return response.InternalError(c, "Failed to create store")
	}

	return response.Created(c, s, "Store created successfully")
}

func UpdateStoreHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid store ID", nil)
	}

	var s models.Store
	if err := database.DB.First(&s, id).Error; err != nil {
		return response.NotFound(c, "Store")
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	merged := map[string]any{
		"name": s.Name, "slug": s.Slug, "description": s.Description,
		"website_url": s.WebsiteURL, "phone": s.Phone, "email": s.Email,
		"address_line1": s.AddressLine1, "city": s.City, "state": s.State,
		"country": s.Country, "postal_code": s.PostalCode,
		"timezone": s.Timezone, "currency": s.Currency, "status": s.Status,
	}
	updates := map[string]any{}
	for _, key := range editableFields {
		if v, ok := body[key]; ok {
			merged[key] = v
			updates[key] = v
		}
	}

	if problems := schema.Validate("stores", merged); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	if err := database.DB.Model(&s).Updates(updates).Error; err != nil {
		return response.InternalError(c, "Failed to update store")
	}

	database.DB.First(&s, id)
	return response.Success(c, s, "Store updated successfully")
}

func DeleteStoreHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid store ID", nil)
	}

	var s models.Store
	if err := database.DB.First(&s, id).Error; err != nil {
		return response.NotFound(c, "Store")
	}

	if err := database.DB.Delete(&s).Error; err != nil {
		return response.InternalError(c, "Failed to delete store")
	}

	return response.Success(c, nil, "Store deleted successfully")
}
