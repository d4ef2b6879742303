package routes

import (
	"coffee-shop-api/handlers"
	"coffee-shop-api/middleware"
	"coffee-shop-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed)
		public.GET("/products", handlers.ListProducts)
		public.GET("/products/search", handlers.SearchProducts)
		public.GET("/products/favorites", handlers.FavoriteProducts)
		public.GET("/products/:id", handlers.GetProduct)
		public.GET("/products/:id/modifiers", handlers.GetProductModifiers)

		// Reviews are public to read
		public.GET("/reviews", handlers.ListReviews)

		// Coupons
		public.GET("/coupons/active", handlers.ActiveCoupons)
		public.POST("/coupons/validate", handlers.ValidateCoupon)

		// Site settings for the storefront footer
		public.GET("/settings", handlers.GetSettings)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/reviews", handlers.CreateReview)

		auth.GET("/wishlist", handlers.GetWishlist)
		auth.POST("/wishlist", handlers.AddToWishlist)
		auth.DELETE("/wishlist", handlers.RemoveFromWishlist)

		auth.GET("/notifications/stream", handlers.StreamNotifications)
		auth.PUT("/notifications/read", handlers.MarkNotificationsRead)

		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
	}

	// ── Storefront routes (admin accounts rejected) ────────────────
	store := r.Group("/api")
	store.Use(middleware.AuthRequired(), middleware.RoleForbidden(models.RoleAdmin))
	{
		store.GET("/cart", handlers.GetCart)
		store.POST("/cart", handlers.AddToCart)
		store.PUT("/cart", handlers.UpdateCartItem)
		store.DELETE("/cart", handlers.RemoveCartItem)

		store.POST("/orders", handlers.CreateOrder)
		store.POST("/orders/:id/reorder", handlers.ReorderOrder)
		store.PUT("/orders/:id/cancel", handlers.CancelOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders", handlers.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/advance", handlers.AdminAdvanceOrderStatus)

		admin.GET("/products", handlers.AdminListProducts)
		admin.POST("/products", handlers.AdminCreateProduct)
		admin.PUT("/products/:id", handlers.AdminUpdateProduct)
		admin.DELETE("/products/:id", handlers.AdminDeleteProduct)

		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/stats", handlers.AdminStats)
		admin.GET("/export", handlers.AdminExport)
		admin.PUT("/settings", handlers.UpdateSettings)
	}
}
