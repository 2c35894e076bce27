package backup_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biz365/admin-api/internal/backup"
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/testutils"
	"github.com/biz365/admin-api/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestBackupHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	assert.NoError(t, utils.InitBackupStorage())
	utils.SetStorageMode(true)

	prevDataDir := backup.DataDir
	backup.DataDir = t.TempDir()
	t.Cleanup(func() {
		backup.DataDir = prevDataDir
		os.RemoveAll(utils.BackupBasePath)
	})

	assert.NoError(t, os.WriteFile(filepath.Join(backup.DataDir, "users.json"), []byte(`[{"id":1}]`), 0644))

	var location string
	var backupID float64

	t.Run("Success - Create archives the data directory", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/admin/backups", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})

		assert.Equal(t, "completed", data["status"])
		assert.Equal(t, "local", data["storage"])
		assert.True(t, strings.HasSuffix(data["filename"].(string), ".tar.gz"))
		assert.Greater(t, data["size_bytes"].(float64), float64(0))

		backupID = data["id"].(float64)
		location = data["location"].(string)
		_, err = os.Stat(location)
		assert.NoError(t, err)
	})

	t.Run("Success - Listed with pagination meta", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/admin/backups", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Equal(t, int64(1), result.Meta.Total)
	})

	t.Run("Success - Delete removes archive and record", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/admin/backups/%.0f", backupID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		_, err = os.Stat(location)
		assert.True(t, os.IsNotExist(err))

		var result testutils.StandardResponse
		resp, err = testutils.MakeRequest(app, "GET", "/admin/backups", nil, token)
		assert.NoError(t, err)
		testutils.ParseResponse(t, resp, &result)
		assert.Equal(t, int64(0), result.Meta.Total)
	})

	t.Run("Fail - Unknown backup", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/admin/backups/9999", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}
