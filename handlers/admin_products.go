package handlers

import (
	"net/http"

	"coffee-shop-api/config"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Price           int    `json:"price" binding:"required,min=1"`
	Category        string `json:"category" binding:"required"`
	Image           string `json:"image"`
	IsPopular       bool   `json:"is_popular"`
	IsNew           bool   `json:"is_new"`
	DiscountPercent *int   `json:"discount_percent"`
}

// AdminListProducts returns the full catalog, newest first
func AdminListProducts(c *gin.Context) {
	var products []models.Product
	config.DB.Order("created_at desc").Find(&products)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AdminCreateProduct adds a product to the catalog
func AdminCreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama, deskripsi, harga, dan kategori harus diisi"})
		return
	}
	if req.DiscountPercent != nil && (*req.DiscountPercent < 0 || *req.DiscountPercent > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Diskon harus antara 0 dan 100"})
		return
	}

	product := models.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		Image:           req.Image,
		IsPopular:       req.IsPopular,
		IsNew:           req.IsNew,
		DiscountPercent: req.DiscountPercent,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		config.Log.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan produk"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Produk berhasil ditambahkan", "product": product})
}

// AdminUpdateProduct overwrites a product's editable fields
func AdminUpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama, deskripsi, harga, dan kategori harus diisi"})
		return
	}
	if req.DiscountPercent != nil && (*req.DiscountPercent < 0 || *req.DiscountPercent > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Diskon harus antara 0 dan 100"})
		return
	}

	updates := map[string]interface{}{
		"name":             req.Name,
		"description":      req.Description,
		"price":            req.Price,
		"category":         req.Category,
		"image":            req.Image,
		"is_popular":       req.IsPopular,
		"is_new":           req.IsNew,
		"discount_percent": req.DiscountPercent,
	}
	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		config.Log.Error("Failed to update product", zap.Error(err), zap.Uint("product_id", product.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengupdate produk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produk berhasil diupdate", "product": product})
}

// AdminDeleteProduct removes a product from the catalog
func AdminDeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		config.Log.Error("Failed to delete product", zap.Error(err), zap.Uint("product_id", product.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus produk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produk berhasil dihapus"})
}
