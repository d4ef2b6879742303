package handlers

import (
	"errors"
	"math"
	"net/http"

	"coffee-shop-api/config"
	"coffee-shop-api/middleware"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	OrderID   *uint  `json:"order_id"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// ListReviews returns a product's reviews, newest first (public)
func ListReviews(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id diperlukan"})
		return
	}

	var reviews []models.Review
	config.DB.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&reviews)

	out := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, gin.H{
			"id":          r.ID,
			"rating":      r.Rating,
			"comment":     r.Comment,
			"is_verified": r.IsVerified,
			"created_at":  r.CreatedAt,
			"user":        gin.H{"id": r.User.ID, "name": r.User.Name},
		})
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}

// CreateReview stores a review, flags verified purchases and recomputes the
// product's aggregate rating. One review per user per product.
func CreateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating harus antara 1 dan 5"})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	var existing models.Review
	if err := config.DB.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Anda sudah memberi ulasan untuk produk ini"})
		return
	}

	// Verified means the reviewer has a delivered order containing this
	// product; when an order id is given, only that order counts.
	isVerified := hasDeliveredOrder(userID, req.ProductID, req.OrderID)

	review := models.Review{
		UserID:     userID,
		ProductID:  req.ProductID,
		OrderID:    req.OrderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsVerified: isVerified,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		config.Log.Error("Failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan ulasan"})
		return
	}

	recomputeProductRating(req.ProductID)

	config.DB.Preload("User").First(&review, review.ID)
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func hasDeliveredOrder(userID, productID uint, orderID *uint) bool {
	query := config.DB.Model(&models.Order{}).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ?",
			userID, models.StatusDelivered, productID)
	if orderID != nil {
		query = query.Where("orders.id = ?", *orderID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		config.Log.Error("Failed to check delivered orders", zap.Error(err))
		return false
	}
	return count > 0
}

// recomputeProductRating re-reads every rating for the product. Fine at
// coffee-shop scale; would need an incremental version with real volume.
func recomputeProductRating(productID uint) {
	var ratings []int
	if err := config.DB.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error; err != nil {
		config.Log.Error("Failed to load ratings", zap.Error(err))
		return
	}
	if len(ratings) == 0 {
		return
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10

	if err := config.DB.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"average_rating": avg,
			"review_count":   len(ratings),
		}).Error; err != nil {
		config.Log.Error("Failed to update product rating", zap.Error(err))
	}
}
