package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"coffee-shop-api/config"
	"coffee-shop-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_SnapshotsCartAndClearsIt(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	espresso := createProduct(t, "Espresso", 18000)
	cookies := createProduct(t, "Cookies", 18000)
	addCartItem(t, user.ID, espresso.ID, 2)
	addCartItem(t, user.ID, cookies.ID, 1)

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"notes": "tanpa gula",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	// subtotal 54000 + service fee 2000
	assert.Equal(t, float64(56000), body["total"])
	assert.Equal(t, "pending", body["status"])
	assert.Len(t, body["items"], 2)

	// exactly one order with mirrored items
	var orders []models.Order
	config.DB.Preload("Items").Where("user_id = ?", user.ID).Find(&orders)
	require.Len(t, orders, 1)
	assert.Equal(t, 56000, orders[0].Total)
	assert.Equal(t, "tanpa gula", orders[0].Notes)
	require.Len(t, orders[0].Items, 2)
	for _, item := range orders[0].Items {
		assert.Equal(t, 18000, item.Price)
	}

	// cart emptied
	var count int64
	config.DB.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrder_TotalFrozenAfterPriceChange(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	espresso := createProduct(t, "Espresso", 18000)
	addCartItem(t, user.ID, espresso.ID, 1)

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// raise the menu price after checkout
	config.DB.Model(&models.Product{}).Where("id = ?", espresso.ID).Update("price", 25000)

	var order models.Order
	require.NoError(t, config.DB.Preload("Items").Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, 20000, order.Total) // 18000 + fee, not recomputed
	assert.Equal(t, 18000, order.Items[0].Price)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "budi", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Keranjang kosong", decode(t, w)["error"])
}

func TestCreateOrder_AdminForbidden(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "admin", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateOrder_Unauthenticated(t *testing.T) {
	r := setupTest(t)
	w := doJSON(t, r, http.MethodPost, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrder_AppliesCouponAndCountsUsage(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "V60 Gayo", 30000)
	addCartItem(t, user.ID, product.ID, 2) // subtotal 60000
	coupon := createCoupon(t, "DISKON10", 10, intPtr(50000))

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"coupon_code": "diskon10", // codes are case-insensitive
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 60000 + 2000 - floor(60000*10/100)
	assert.Equal(t, float64(56000), decode(t, w)["total"])

	var reloaded models.Coupon
	require.NoError(t, config.DB.First(&reloaded, coupon.ID).Error)
	assert.Equal(t, 1, reloaded.UsedCount)
}

func TestCreateOrder_RejectsCouponBelowMinPurchase(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)
	addCartItem(t, user.ID, product.ID, 1)
	createCoupon(t, "DISKON10", 10, intPtr(50000))

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"coupon_code": "DISKON10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Minimal pembelian")

	// nothing committed: cart intact, no order created
	var cartItems, orders int64
	config.DB.Model(&models.CartItem{}).Count(&cartItems)
	config.DB.Model(&models.Order{}).Count(&orders)
	assert.Equal(t, int64(1), cartItems)
	assert.Zero(t, orders)
}

func TestGetMyOrders_OnlyOwn(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	other, _ := createUser(t, "sari", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)

	config.DB.Create(&models.Order{UserID: user.ID, Total: 20000, Status: models.StatusPending,
		Items: []models.OrderItem{{ProductID: product.ID, Quantity: 1, Price: 18000}}})
	config.DB.Create(&models.Order{UserID: other.ID, Total: 38000, Status: models.StatusPending})

	w := doJSON(t, r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])
}

func TestGetOrderDetail_OwnershipEnforced(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "budi", models.RoleCustomer)
	other, _ := createUser(t, "sari", models.RoleCustomer)

	order := models.Order{UserID: other.ID, Total: 20000, Status: models.StatusPending}
	require.NoError(t, config.DB.Create(&order).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReorder_IntoEmptyCart(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)

	order := models.Order{
		UserID: user.ID, Total: 38000, Status: models.StatusDelivered,
		Items: []models.OrderItem{{ProductID: product.ID, Quantity: 2, Price: 18000}},
	}
	require.NoError(t, config.DB.Create(&order).Error)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/reorder", order.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(1), decode(t, w)["item_count"])

	var items []models.CartItem
	config.DB.Find(&items)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestReorder_MergesWithExistingCart(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)
	addCartItem(t, user.ID, product.ID, 1)

	order := models.Order{
		UserID: user.ID, Total: 38000, Status: models.StatusDelivered,
		Items: []models.OrderItem{{ProductID: product.ID, Quantity: 2, Price: 18000}},
	}
	require.NoError(t, config.DB.Create(&order).Error)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/reorder", order.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, config.DB.First(&item).Error)
	assert.Equal(t, 3, item.Quantity)
}

func TestCancelOrder_GuardedByLifecycle(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)

	pending := models.Order{UserID: user.ID, Total: 20000, Status: models.StatusPending}
	preparing := models.Order{UserID: user.ID, Total: 20000, Status: models.StatusPreparing}
	require.NoError(t, config.DB.Create(&pending).Error)
	require.NoError(t, config.DB.Create(&preparing).Error)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d/cancel", pending.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Order
	config.DB.First(&reloaded, pending.ID)
	assert.Equal(t, models.StatusCancelled, reloaded.Status)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d/cancel", preparing.ID), token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
