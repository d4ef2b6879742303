package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"coffee-shop-api/config"
	"coffee-shop-api/lifecycle"
	"coffee-shop-api/middleware"
	"coffee-shop-api/models"
	"coffee-shop-api/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Notes      string `json:"notes"`
	CouponCode string `json:"coupon_code"`
}

// CreateOrder turns the caller's cart into an immutable order. The order
// insert, its item snapshots, the coupon usage increment and the cart wipe all
// happen in one transaction so a failure never leaves a partial order behind.
// The total is recomputed server-side; a client-side coupon calculation is
// never trusted.
func CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	// Both fields are optional, so an empty body is fine
	var req CreateOrderRequest
	_ = c.ShouldBindJSON(&req)

	var cart models.Cart
	if err := config.DB.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil || len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keranjang kosong"})
		return
	}

	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, pricing.Line{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
	}
	subtotal := pricing.Subtotal(lines)

	// Re-validate the coupon server-side; the discount the checkout page
	// showed is advisory only.
	discount := 0
	var coupon *models.Coupon
	if req.CouponCode != "" {
		var found models.Coupon
		err := config.DB.Where("code = ?", strings.ToUpper(req.CouponCode)).First(&found).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pricing.ErrCouponNotFound.Error()})
			return
		}
		if err != nil {
			config.Log.Error("Failed to load coupon", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat pesanan"})
			return
		}
		result, err := pricing.ValidateCoupon(&found, subtotal, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		discount = result.DiscountAmount
		coupon = &found
	}

	total := pricing.Total(subtotal, config.App.ServiceFee, discount)

	order := models.Order{
		UserID: userID,
		Total:  total,
		Status: models.StatusPending,
		Notes:  req.Notes,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if coupon != nil {
			if err := tx.Model(&models.Coupon{}).
				Where("id = ?", coupon.ID).
				Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
		}
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		config.Log.Error("Order transaction failed", zap.Error(err), zap.Uint("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat pesanan"})
		return
	}

	items := make([]gin.H, 0, len(order.Items))
	for i, item := range order.Items {
		items = append(items, gin.H{
			"name":     cart.Items[i].Product.Name,
			"quantity": item.Quantity,
			"price":    item.Price,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Pesanan berhasil dibuat",
		"order_id": order.ID,
		"total":    order.Total,
		"status":   order.Status,
		"items":    items,
	})
}

// GetMyOrders lists the caller's orders, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order owned by the caller
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items.Product").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pesanan tidak ditemukan"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Pesanan ini bukan milik Anda"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ReorderOrder copies an old order's lines back into the caller's cart,
// incrementing quantities for products already there. Current availability
// and price drift are deliberately not checked; the cart shows live prices.
func ReorderOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pesanan tidak ditemukan"})
		return
	}

	cart, err := getOrCreateCart(config.DB, userID)
	if err != nil {
		config.Log.Error("Failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memesan ulang"})
		return
	}

	for _, item := range order.Items {
		var existing models.CartItem
		err := config.DB.Where("cart_id = ? AND product_id = ?", cart.ID, item.ProductID).First(&existing).Error
		switch {
		case err == nil:
			err = config.DB.Model(&existing).Update("quantity", existing.Quantity+item.Quantity).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = config.DB.Create(&models.CartItem{
				CartID:    cart.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}).Error
		}
		if err != nil {
			config.Log.Error("Failed to reorder item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memesan ulang"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Item ditambahkan ke cart",
		"item_count": len(order.Items),
	})
}

// CancelOrder lets a customer cancel their own order while it is still
// pending or confirmed.
func CancelOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pesanan tidak ditemukan"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Pesanan ini bukan milik Anda"})
		return
	}

	if err := lifecycle.CanCustomerCancel(order.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Pesanan tidak bisa dibatalkan",
			"current_status": order.Status,
		})
		return
	}

	config.DB.Model(&order).Update("status", models.StatusCancelled)
	c.JSON(http.StatusOK, gin.H{"message": "Pesanan dibatalkan", "order_id": order.ID})
}
