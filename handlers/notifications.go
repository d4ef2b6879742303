package handlers

import (
	"net/http"
	"time"

	"coffee-shop-api/config"
	"coffee-shop-api/middleware"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// notificationPollInterval is how often the stream re-queries for unread
// notifications.
const notificationPollInterval = 5 * time.Second

// StreamNotifications pushes unread notifications to the caller over
// Server-Sent Events, polling the database until the client disconnects.
func StreamNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("message", gin.H{"type": "connected"})
	c.Writer.Flush()

	ticker := time.NewTicker(notificationPollInterval)
	defer ticker.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case <-ticker.C:
			var notifications []models.Notification
			if err := config.DB.
				Where("user_id = ? AND is_read = ?", userID, false).
				Order("created_at desc").
				Limit(10).
				Find(&notifications).Error; err != nil {
				config.Log.Error("Failed to poll notifications", zap.Error(err))
				continue
			}
			if len(notifications) > 0 {
				c.SSEvent("message", gin.H{"type": "notifications", "data": notifications})
				c.Writer.Flush()
			}
		}
	}
}

// MarkNotificationsRead marks all of the caller's notifications as read
func MarkNotificationsRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	c.JSON(http.StatusOK, gin.H{"message": "Notifikasi ditandai sudah dibaca"})
}

// notifyStatusChange records an order-status notification for its owner.
// Best effort: a failed insert is logged, never surfaced to the admin call.
func notifyStatusChange(order *models.Order, status models.OrderStatus) {
	n := models.Notification{
		UserID:  order.UserID,
		OrderID: order.ID,
		Title:   "Status pesanan diperbarui",
		Message: "Pesanan Anda sekarang berstatus " + string(status),
	}
	if err := config.DB.Create(&n).Error; err != nil {
		config.Log.Error("Failed to create notification", zap.Error(err), zap.Uint("order_id", order.ID))
	}
}
