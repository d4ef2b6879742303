package config

import (
	"errors"

	"coffee-shop-api/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin creates the administrative account from ADMIN_EMAIL and
// ADMIN_PASSWORD, or promotes the existing user with that email to admin.
// No-op when the variables are unset.
func EnsureAdmin() {
	if App.AdminEmail == "" || App.AdminPassword == "" {
		return
	}

	var user models.User
	err := DB.Where("email = ?", App.AdminEmail).First(&user).Error
	switch {
	case err == nil:
		if user.Role != models.RoleAdmin {
			if err := DB.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
				Log.Error("Failed to promote admin user", zap.Error(err))
				return
			}
			Log.Info("Existing user promoted to admin", zap.String("email", App.AdminEmail))
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(App.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			Log.Error("Failed to hash admin password", zap.Error(err))
			return
		}
		admin := models.User{
			Name:         "Admin",
			Email:        App.AdminEmail,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := DB.Create(&admin).Error; err != nil {
			Log.Error("Failed to create admin user", zap.Error(err))
			return
		}
		Log.Info("Admin user created", zap.String("email", App.AdminEmail))
	default:
		Log.Error("Failed to look up admin user", zap.Error(err))
	}
}
