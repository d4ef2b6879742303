package handlers

import (
	"net/http"

	"coffee-shop-api/config"
	"coffee-shop-api/middleware"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// getOrCreateCart loads the caller's cart, creating the row on first use
func getOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		err = db.Create(&cart).Error
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart returns the caller's cart items with joined product info
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	cart, err := getOrCreateCart(config.DB, userID)
	if err != nil {
		config.Log.Error("Failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil cart"})
		return
	}

	var items []models.CartItem
	config.DB.Preload("Product").Where("cart_id = ?", cart.ID).Find(&items)

	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, gin.H{
			"id":         item.ID,
			"product_id": item.ProductID,
			"name":       item.Product.Name,
			"price":      item.Product.Price,
			"category":   item.Product.Category,
			"image":      item.Product.Image,
			"quantity":   item.Quantity,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": out})
}

// AddToCart adds a product to the caller's cart, incrementing the quantity
// when the product is already there.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	cart, err := getOrCreateCart(config.DB, userID)
	if err != nil {
		config.Log.Error("Failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan ke cart"})
		return
	}

	var existing models.CartItem
	err = config.DB.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).First(&existing).Error
	switch {
	case err == nil:
		err = config.DB.Model(&existing).Update("quantity", existing.Quantity+req.Quantity).Error
	case err == gorm.ErrRecordNotFound:
		err = config.DB.Create(&models.CartItem{
			CartID:    cart.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}).Error
	}
	if err != nil {
		config.Log.Error("Failed to upsert cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan ke cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item ditambahkan ke cart"})
}

// UpdateCartItem sets a line's quantity; zero or less removes the line
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := ownedCartItem(c, req.ItemID, userID)
	if !ok {
		return
	}

	if req.Quantity <= 0 {
		config.DB.Delete(&models.CartItem{}, item.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Item dihapus dari cart"})
		return
	}

	config.DB.Model(item).Update("quantity", req.Quantity)
	c.JSON(http.StatusOK, gin.H{"message": "Quantity diperbarui"})
}

// RemoveCartItem deletes a single line from the caller's cart
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	itemID := c.Query("item_id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID diperlukan"})
		return
	}

	var item models.CartItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item tidak ditemukan"})
		return
	}
	if _, ok := verifyCartOwner(c, &item, userID); !ok {
		return
	}

	config.DB.Delete(&models.CartItem{}, item.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Item dihapus dari cart"})
}

// ownedCartItem loads a cart item and checks it belongs to the caller,
// writing the error response itself when it does not.
func ownedCartItem(c *gin.Context, itemID, userID uint) (*models.CartItem, bool) {
	var item models.CartItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item tidak ditemukan"})
		return nil, false
	}
	return verifyCartOwner(c, &item, userID)
}

func verifyCartOwner(c *gin.Context, item *models.CartItem, userID uint) (*models.CartItem, bool) {
	var cart models.Cart
	if err := config.DB.First(&cart, item.CartID).Error; err != nil || cart.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item tidak ditemukan"})
		return nil, false
	}
	return item, true
}
