// Package backup archives the data directory into a tar.gz and hands
// it to the configured storage backend (local disk or S3).
package backup

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// DataDir is set at startup to whatever directory holds the files worth
// archiving.
var DataDir = "./data"

func ListBackupsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.Backup{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count backups")
	}

	var backups []models.Backup
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"filename", "size_bytes", "status", "created_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&backups).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch backups")
	}

	return response.SuccessWithMeta(c, backups, response.CalculateMeta(page, limit, total), "Backups retrieved successfully")
}

func CreateBackupHandler(c *fiber.Ctx) error {
	filename := utils.BackupFilename()

	rec := models.Backup{
		Filename: filename,
		Storage:  utils.GetStorageMode(),
		Status:   "in_progress",
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return response.InternalError(c, "Failed to record backup")
	}

	tmpPath := filepath.Join(os.TempDir(), filename)
	size, err := archiveDir(DataDir, tmpPath)
	if err != nil {
		database.DB.Model(&rec).Update("status", "failed")
		return response.InternalError(c, "Failed to archive data directory")
	}

	location, err := utils.StoreBackup(tmpPath, filename)
	if err != nil {
		os.Remove(tmpPath)
		database.DB.Model(&rec).Update("status", "failed")
		return response.InternalError(c, "Failed to store backup archive")
	}

	database.DB.Model(&rec).Updates(map[string]any{
		"location":   location,
		"size_bytes": size,
		"status":     "completed",
	})

	database.DB.First(&rec, rec.ID)
	return response.Created(c, rec, "Backup created successfully")
}

func DeleteBackupHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid backup ID", nil)
	}

	var rec models.Backup
	if err := database.DB.First(&rec, id).Error; err != nil {
		return response.NotFound(c, "Backup")
	}

	if rec.Location != "" {
		if err := utils.DeleteBackup(rec.Location); err != nil && !os.IsNotExist(err) {
			return response.InternalError(c, "Failed to delete backup archive")
		}
	}
	if err := database.DB.Delete(&rec).Error; err != nil {
		return response.InternalError(c, "Failed to delete backup record")
	}

	return response.Success(c, nil, "Backup deleted successfully")
}

// archiveDir writes dir into a tar.gz at dst and returns the archive
// size in bytes. Subdirectories are walked; symlinks are skipped.
func archiveDir(dir, dst string) (int64, error) {
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = rel
		if err := tw.WriteHeader(header); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		tw.Close()
		gz.Close()
		return 0, err
	}

	if err := tw.Close(); err != nil {
		return 0, err
	}
	if err := gz.Close(); err != nil {
		return 0, err
	}

	stat, err := os.Stat(dst)
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}
