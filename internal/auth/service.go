package auth

import (
	"errors"
	"time"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
)

// Authenticate verifies credentials and returns the user plus a signed
// token. Every attempt, failed or not, leaves an audit log row.
func Authenticate(db *gorm.DB, email, password, ip, userAgent string) (*models.User, string, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		recordAttempt(db, nil, email, ip, userAgent, "user.failed_login", "warning", "Failed login attempt")
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		recordAttempt(db, &user.ID, email, ip, userAgent, "user.failed_login", "warning", "Failed login attempt")
		return nil, "", ErrInvalidCredentials
	}

	if user.Status != "active" {
		recordAttempt(db, &user.ID, email, ip, userAgent, "user.failed_login", "warning", "Login rejected for inactive account")
		return nil, "", ErrAccountInactive
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user.LastLogin = &now
	db.Model(&user).Update("last_login", now)

	recordAttempt(db, &user.ID, email, ip, userAgent, "user.login", "info", "User logged in successfully")
	return &user, token, nil
}

func recordAttempt(db *gorm.DB, userID *uint, email, ip, userAgent, action, level, message string) {
	db.Create(&models.LogEntry{
		Level:     level,
		Action:    action,
		Message:   message,
		UserID:    userID,
		UserEmail: email,
		IPAddress: ip,
		UserAgent: userAgent,
		Timestamp: time.Now(),
	})
}

// CurrentUser loads the authenticated user set by JWTProtected.
func CurrentUser(userID uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
