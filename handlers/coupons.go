package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"coffee-shop-api/config"
	"coffee-shop-api/models"
	"coffee-shop-api/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ValidateCouponRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int    `json:"subtotal"`
}

// ValidateCoupon checks a code against the current time and subtotal and
// returns the computed discount. Read-only: usage is only counted when an
// order is actually created.
func ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code is required"})
		return
	}

	var coupon models.Coupon
	err := config.DB.Where("code = ?", strings.ToUpper(req.Code)).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": pricing.ErrCouponNotFound.Error()})
		return
	}
	if err != nil {
		config.Log.Error("Failed to load coupon", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memvalidasi kupon"})
		return
	}

	result, err := pricing.ValidateCoupon(&coupon, req.Subtotal, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "coupon": result})
}

// ActiveCoupons returns the top promo-banner coupons: active, inside their
// validity window, not yet exhausted.
func ActiveCoupons(c *gin.Context) {
	now := time.Now()
	var coupons []models.Coupon
	config.DB.
		Where("is_active = ?", true).
		Where("valid_from <= ? AND valid_until >= ?", now, now).
		Where("max_uses IS NULL OR used_count < max_uses").
		Order("discount desc").
		Limit(5).
		Find(&coupons)

	out := make([]gin.H, 0, len(coupons))
	for _, cp := range coupons {
		out = append(out, gin.H{
			"id":           cp.ID,
			"code":         cp.Code,
			"discount":     cp.Discount,
			"min_purchase": cp.MinPurchase,
			"valid_until":  cp.ValidUntil,
		})
	}
	c.JSON(http.StatusOK, gin.H{"coupons": out})
}
