package handlers

import (
	"net/http"
	"strconv"

	"coffee-shop-api/config"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListProducts returns the catalog with optional filters and sorting (public)
func ListProducts(c *gin.Context) {
	var products []models.Product
	query := config.DB.Model(&models.Product{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)",
			like, like, like,
		)
	}
	if c.Query("popular") == "true" {
		query = query.Where("is_popular = ?", true)
	}
	if c.Query("new") == "true" {
		query = query.Where("is_new = ?", true)
	}

	switch c.Query("sort") {
	case "price":
		query = query.Order("price asc")
	case "price_desc":
		query = query.Order("price desc")
	case "name":
		query = query.Order("name asc")
	default:
		query = query.Order("created_at desc")
	}

	query.Find(&products)
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// SearchProducts powers the header autocomplete (public). Queries shorter
// than two characters return an empty list rather than the whole catalog.
func SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 2 {
		c.JSON(http.StatusOK, gin.H{"products": []models.Product{}})
		return
	}

	limit := 5
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	like := "%" + q + "%"
	var products []models.Product
	config.DB.
		Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)",
			like, like, like,
		).
		Order("is_popular desc").
		Order("name asc").
		Limit(limit).
		Find(&products)

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// FavoriteProducts returns the featured picks for the home page (public)
func FavoriteProducts(c *gin.Context) {
	var products []models.Product
	config.DB.
		Where("is_popular = ?", true).
		Order("average_rating desc").
		Order("review_count desc").
		Limit(6).
		Find(&products)

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns a single product with its modifiers (public)
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.
		Preload("Modifiers", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetProductModifiers returns a product's add-ons sorted for display (public)
func GetProductModifiers(c *gin.Context) {
	var modifiers []models.ProductModifier
	config.DB.
		Where("product_id = ?", c.Param("id")).
		Order("sort_order asc").
		Find(&modifiers)
	c.JSON(http.StatusOK, gin.H{"modifiers": modifiers})
}
