package handlers

import (
	"net/http"

	"coffee-shop-api/config"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateSettingsRequest struct {
	Settings []struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value"`
	} `json:"settings" binding:"required"`
}

// GetSettings returns the site settings, optionally filtered by group, as
// both a list (admin form) and a key-value map (storefront).
func GetSettings(c *gin.Context) {
	var settings []models.SiteSetting
	query := config.DB.Order("id asc")
	if group := c.Query("group"); group != "" {
		query = query.Where("\"group\" = ?", group)
	}
	query.Find(&settings)

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings, "values": values})
}

// UpdateSettings bulk-updates setting values (admin only)
func UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format data tidak valid"})
		return
	}

	for _, s := range req.Settings {
		if err := config.DB.Model(&models.SiteSetting{}).
			Where("key = ?", s.Key).
			Update("value", s.Value).Error; err != nil {
			config.Log.Error("Failed to update setting", zap.Error(err), zap.String("key", s.Key))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengupdate pengaturan"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
