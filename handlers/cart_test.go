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

func TestAddToCart_UpsertsQuantity(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/cart", token, map[string]interface{}{
			"product_id": product.ID,
			"quantity":   1,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	// adding the same product twice increments quantity, never duplicates
	var items []models.CartItem
	config.DB.Find(&items)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCart_DefaultQuantityAndMissingProduct(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)

	w := doJSON(t, r, http.MethodPost, "/api/cart", token, map[string]interface{}{
		"product_id": product.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, config.DB.First(&item).Error)
	assert.Equal(t, 1, item.Quantity)

	w = doJSON(t, r, http.MethodPost, "/api/cart", token, map[string]interface{}{
		"product_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCart_JoinsProductInfo(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)
	addCartItem(t, user.ID, product.ID, 2)

	w := doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, "Espresso", line["name"])
	assert.Equal(t, float64(18000), line["price"])
	assert.Equal(t, float64(2), line["quantity"])
}

func TestUpdateCartItem_ZeroQuantityDeletes(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "budi", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)
	addCartItem(t, user.ID, product.ID, 2)

	var item models.CartItem
	require.NoError(t, config.DB.First(&item).Error)

	w := doJSON(t, r, http.MethodPut, "/api/cart", token, map[string]interface{}{
		"item_id":  item.ID,
		"quantity": 0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	config.DB.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestCart_OwnershipChecked(t *testing.T) {
	r := setupTest(t)
	owner, _ := createUser(t, "budi", models.RoleCustomer)
	_, intruderToken := createUser(t, "sari", models.RoleCustomer)
	product := createProduct(t, "Espresso", 18000)
	addCartItem(t, owner.ID, product.ID, 1)

	var item models.CartItem
	require.NoError(t, config.DB.First(&item).Error)

	w := doJSON(t, r, http.MethodPut, "/api/cart", intruderToken, map[string]interface{}{
		"item_id":  item.ID,
		"quantity": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/cart?item_id=%d", item.ID), intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// untouched
	config.DB.First(&item, item.ID)
	assert.Equal(t, 1, item.Quantity)
}

func TestCart_AdminRejected(t *testing.T) {
	r := setupTest(t)
	_, adminToken := createUser(t, "admin", models.RoleAdmin)

	w := doJSON(t, r, http.MethodGet, "/api/cart", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
