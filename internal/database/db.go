package database

import (
	"fmt"
	"log"

	"github.com/biz365/admin-api/internal/config"
	"github.com/biz365/admin-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	DB = db

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.NfcTag{},
		&models.Store{},
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.LogEntry{},
		&models.Setting{},
		&models.ApiKey{},
		&models.Backup{},
		&models.EmailTemplate{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database migrated successfully!")
	return nil
}
