package nfctag

import (
	"time"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/schema"
	"github.com/gofiber/fiber/v2"
)

func ListNfcTagsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.NfcTag{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("uid LIKE ? OR title LIKE ? OR store_id LIKE ? OR target_url LIKE ?", like, like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if storeID := c.Query("store_id"); storeID != "" {
		q = q.Where("store_id = ?", storeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count NFC tags")
	}

	var tags []models.NfcTag
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"uid", "title", "status", "hit_count", "last_hit", "created_at", "updated_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&tags).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch NFC tags")
	}

	return response.SuccessWithMeta(c, tags, response.CalculateMeta(page, limit, total), "NFC tags retrieved successfully")
}

func GetNfcTagHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid NFC tag ID", nil)
	}

	var tag models.NfcTag
	if err := database.DB.First(&tag, id).Error; err != nil {
		return response.NotFound(c, "NFC tag")
	}

	return response.Success(c, tag, "NFC tag retrieved successfully")
}

func CreateNfcTagHandler(c *fiber.Ctx) error {
	var body struct {
		StoreID   string `json:"store_id"`
		UID       string `json:"uid"`
		Title     string `json:"title"`
		TargetURL string `json:"target_url"`
		Status    string `json:"status"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if problems := schema.Validate("nfc_tags", fiber.Map{
		"store_id":   body.StoreID,
		"uid":        body.UID,
		"title":      body.Title,
		"target_url": body.TargetURL,
		"status":     body.Status,
	}); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	var existing models.NfcTag
	if err := database.DB.Where("uid = ?", body.UID).First(&existing).Error; err == nil {
		return response.Conflict(c, "NFC tag with this UID already exists")
	}

	tag := models.NfcTag{
		StoreID:   body.StoreID,
		UID:       body.UID,
		Title:     body.Title,
		TargetURL: body.TargetURL,
		Status:    body.Status,
	}

	if err := database.DB.Create(&tag).Error; err != nil {
		return response.InternalError(c, "Failed to create NFC tag")
	}

	return response.Created(c, tag, "NFC tag created successfully")
}

func UpdateNfcTagHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid NFC tag ID", nil)
	}

	var tag models.NfcTag
	if err := database.DB.First(&tag, id).Error; err != nil {
		return response.NotFound(c, "NFC tag")
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	merged := fiber.Map{
		"store_id":   tag.StoreID,
		"uid":        tag.UID,
		"title":      tag.Title,
		"target_url": tag.TargetURL,
		"status":     tag.Status,
	}
	updates := map[string]any{}
	for _, key := range []string{"store_id", "uid", "title", "target_url", "status"} {
		if v, ok := body[key]; ok {
			merged[key] = v
			updates[key] = v
		}
	}

	if problems := schema.Validate("nfc_tags", merged); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	if err := database.DB.Model(&tag).Updates(updates).Error; err != nil {
		return response.InternalError(c, "Failed to update NFC tag")
	}

	database.DB.First(&tag, id)
	return response.Success(c, tag, "NFC tag updated successfully")
}

func DeleteNfcTagHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid NFC tag ID", nil)
	}

	var tag models.NfcTag
	if err := database.DB.First(&tag, id).Error; err != nil {
		return response.NotFound(c, "NFC tag")
	}

	if err := database.DB.Delete(&tag).Error; err != nil {
		return response.InternalError(c, "Failed to delete NFC tag")
	}

	return response.Success(c, nil, "NFC tag deleted successfully")
}

// RecordHitHandler is the public scan endpoint: bump the counter, stamp
// last_hit, hand back the redirect target.
func RecordHitHandler(c *fiber.Ctx) error {
	uid := c.Params("uid")

	var tag models.NfcTag
	if err := database.DB.Where("uid = ?", uid).First(&tag).Error; err != nil {
		return response.NotFound(c, "NFC tag")
	}
	if tag.Status != "active" {
		return response.Error(c, fiber.StatusGone, "TAG_INACTIVE", "NFC tag is not active", nil)
	}

	now := time.Now()
	database.DB.Model(&tag).Updates(map[string]any{
		"hit_count": tag.HitCount + 1,
		"last_hit":  now,
	})

	return response.Success(c, fiber.Map{"target_url": tag.TargetURL}, "Hit recorded")
}
