package handlers

import (
	"net/http"
	"time"

	"coffee-shop-api/config"
	"coffee-shop-api/models"
	"coffee-shop-api/reports"

	"github.com/gin-gonic/gin"
)

// AdminStats feeds the dashboard: counts, revenue, the six-month chart, the
// top five products by quantity sold and the five most recent orders.
func AdminStats(c *gin.Context) {
	var totalOrders int64
	config.DB.Model(&models.Order{}).Count(&totalOrders)

	var totalRevenue int64
	config.DB.Model(&models.Order{}).
		Where("status <> ?", models.StatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue)

	var totalProducts int64
	config.DB.Model(&models.Product{}).Count(&totalProducts)

	var totalUsers int64
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&totalUsers)

	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	var chartOrders []models.Order
	config.DB.
		Where("created_at >= ? AND status <> ?", sixMonthsAgo, models.StatusCancelled).
		Order("created_at desc").
		Find(&chartOrders)

	type topProductRow struct {
		ProductID uint
		Sold      int
	}
	var topRows []topProductRow
	config.DB.Model(&models.OrderItem{}).
		Select("product_id, SUM(quantity) as sold").
		Group("product_id").
		Order("sold desc").
		Limit(5).
		Scan(&topRows)

	topProducts := make([]gin.H, 0, len(topRows))
	for _, row := range topRows {
		var product models.Product
		name := "Unknown"
		if err := config.DB.First(&product, row.ProductID).Error; err == nil {
			name = product.Name
		}
		topProducts = append(topProducts, gin.H{"name": name, "sold": row.Sold})
	}

	var recent []models.Order
	config.DB.Preload("User").Order("created_at desc").Limit(5).Find(&recent)

	recentOrders := make([]gin.H, 0, len(recent))
	for _, o := range recent {
		recentOrders = append(recentOrders, gin.H{
			"id":       o.ID,
			"customer": o.User.Name,
			"total":    o.Total,
			"status":   o.Status,
			"date":     o.CreatedAt.Format("02/01/2006"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":   totalOrders,
		"total_revenue":  totalRevenue,
		"total_products": totalProducts,
		"total_users":    totalUsers,
		"monthly_sales":  reports.GroupByMonth(chartOrders),
		"top_products":   topProducts,
		"recent_orders":  recentOrders,
	})
}

// AdminExport downloads the sales report for a date range as CSV (default)
// or JSON. Cancelled orders are excluded.
func AdminExport(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	format := c.DefaultQuery("format", "csv")

	query := config.DB.Preload("User").Preload("Items.Product").
		Where("status <> ?", models.StatusCancelled)

	if startDate != "" {
		if start, err := time.Parse("2006-01-02", startDate); err == nil {
			query = query.Where("created_at >= ?", start)
		}
	}
	if endDate != "" {
		if end, err := time.Parse("2006-01-02", endDate); err == nil {
			// include the whole end day
			query = query.Where("created_at <= ?", end.Add(24*time.Hour-time.Nanosecond))
		}
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)

	if format == "json" {
		out := make([]gin.H, 0, len(orders))
		for _, order := range orders {
			items := make([]gin.H, 0, len(order.Items))
			for _, item := range order.Items {
				items = append(items, gin.H{
					"product":  item.Product.Name,
					"category": item.Product.Category,
					"quantity": item.Quantity,
					"price":    item.Price,
					"subtotal": item.Price * item.Quantity,
				})
			}
			out = append(out, gin.H{
				"id":       order.ID,
				"date":     order.CreatedAt.Format(time.RFC3339),
				"customer": order.User.Name,
				"email":    order.User.Email,
				"status":   order.Status,
				"total":    order.Total,
				"items":    items,
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"summary": reports.Summarize(orders, startDate, endDate),
			"orders":  out,
		})
		return
	}

	csv := reports.RenderCSV(orders, startDate, endDate)
	filename := reports.Filename(startDate, endDate, time.Now())
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
