package handlers

import (
	"net/http"

	"coffee-shop-api/config"
	"coffee-shop-api/middleware"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AddToWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist returns the caller's wishlisted products, newest first
func GetWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var wishlists []models.Wishlist
	config.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&wishlists)

	products := make([]models.Product, 0, len(wishlists))
	for _, w := range wishlists {
		products = append(products, w.Product)
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AddToWishlist adds a product to the caller's wishlist; duplicates conflict
func AddToWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID diperlukan"})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	var existing models.Wishlist
	if err := config.DB.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Produk sudah ada di wishlist"})
		return
	}

	wishlist := models.Wishlist{UserID: userID, ProductID: req.ProductID}
	if err := config.DB.Create(&wishlist).Error; err != nil {
		config.Log.Error("Failed to add wishlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan ke wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Berhasil ditambahkan ke wishlist",
		"wishlist_id": wishlist.ID,
	})
}

// RemoveFromWishlist deletes a product from the caller's wishlist
func RemoveFromWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID diperlukan"})
		return
	}

	config.DB.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Wishlist{})
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil dihapus dari wishlist"})
}
