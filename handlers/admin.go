package handlers

import (
	"net/http"

	"coffee-shop-api/config"
	"coffee-shop-api/lifecycle"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateOrderStatusRequest struct {
	OrderID uint               `json:"order_id" binding:"required"`
	Status  models.OrderStatus `json:"status" binding:"required"`
}

// AdminGetAllOrders lists every order with customer and item detail
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("User").Preload("Items.Product")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{
		"count":    len(orders),
		"orders":   orders,
		"statuses": lifecycle.All(), // for the dashboard's filter dropdown
	})
}

// AdminUpdateOrderStatus sets an order's status to any of the six known
// values. Admins are deliberately not bound to the happy-path ordering; the
// only check is that the literal itself is valid.
func AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID dan status diperlukan"})
		return
	}

	if !lifecycle.IsValid(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status tidak valid"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pesanan tidak ditemukan"})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		config.Log.Error("Failed to update order status", zap.Error(err), zap.Uint("order_id", order.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengupdate pesanan"})
		return
	}

	notifyStatusChange(&order, req.Status)

	c.JSON(http.StatusOK, gin.H{"message": "Status berhasil diupdate", "order": order})
}

// AdminAdvanceOrderStatus moves an order one step along the happy path, the
// dashboard's one-click action. Delivered and cancelled orders have no next
// step.
func AdminAdvanceOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pesanan tidak ditemukan"})
		return
	}

	next := lifecycle.Next(order.Status)
	if next == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Pesanan tidak bisa dilanjutkan",
			"current_status": order.Status,
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", next).Error; err != nil {
		config.Log.Error("Failed to advance order status", zap.Error(err), zap.Uint("order_id", order.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengupdate pesanan"})
		return
	}

	notifyStatusChange(&order, next)

	c.JSON(http.StatusOK, gin.H{"message": "Status berhasil diupdate", "order": order})
}

// AdminGetAllUsers lists accounts, optionally filtered by role
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Order("created_at desc").Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
