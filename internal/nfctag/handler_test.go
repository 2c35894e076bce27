package nfctag_test

import (
	"testing"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestNfcTagHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	t.Run("Success - Create tag", func(t *testing.T) {
		body := map[string]interface{}{
			"store_id":   "store123",
			"uid":        "AB12CD34",
			"title":      "Front Door Tag",
			"target_url": "https://biz365.ai/menu",
			"status":     "active",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/nfc-tags/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)
	})

	t.Run("Fail - Duplicate UID", func(t *testing.T) {
		body := map[string]interface{}{
			"store_id":   "store456",
			"uid":        "AB12CD34",
			"title":      "Another Tag",
			"target_url": "https://biz365.ai/other",
			"status":     "active",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/nfc-tags/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)
		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Fail - UID too long", func(t *testing.T) {
		body := map[string]interface{}{
			"store_id":   "store456",
			"uid":        "AB12CD34EF",
			"title":      "Oversized UID",
			"target_url": "https://biz365.ai/other",
			"status":     "active",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/nfc-tags/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})
}

func TestRecordHitHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	db.Create(&models.NfcTag{StoreID: "store123", UID: "AAAA1111", Title: "Active", TargetURL: "https://biz365.ai/menu", Status: "active"})
	db.Create(&models.NfcTag{StoreID: "store123", UID: "BBBB2222", Title: "Retired", TargetURL: "https://biz365.ai/old", Status: "inactive"})

	t.Run("Success - Scan is public and counts hits", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			resp, err := testutils.MakeRequest(app, "GET", "/t/AAAA1111", nil, "")
			assert.NoError(t, err)
			assert.Equal(t, 200, resp.Code)

			var result testutils.StandardResponse
			testutils.ParseResponse(t, resp, &result)
			data := result.Data.(map[string]interface{})
			assert.Equal(t, "https://biz365.ai/menu", data["target_url"])
		}

		var tag models.NfcTag
		assert.NoError(t, db.Where("uid = ?", "AAAA1111").First(&tag).Error)
		assert.Equal(t, int64(3), tag.HitCount)
		assert.NotNil(t, tag.LastHit)
	})

	t.Run("Fail - Unknown UID", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/t/ZZZZ9999", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})

	t.Run("Fail - Inactive tag is gone", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/t/BBBB2222", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 410, resp.Code)
		testutils.AssertError(t, resp, "TAG_INACTIVE")

		var tag models.NfcTag
		assert.NoError(t, db.Where("uid = ?", "BBBB2222").First(&tag).Error)
		assert.Equal(t, int64(0), tag.HitCount)
	})
}
