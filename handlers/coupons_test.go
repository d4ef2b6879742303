package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"coffee-shop-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoupon_Endpoint(t *testing.T) {
	r := setupTest(t)
	createCoupon(t, "DISKON10", 10, intPtr(50000))

	w := doJSON(t, r, http.MethodPost, "/api/coupons/validate", "", map[string]interface{}{
		"code":     "DISKON10",
		"subtotal": 60000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, true, body["valid"])
	coupon := body["coupon"].(map[string]interface{})
	assert.Equal(t, "DISKON10", coupon["code"])
	assert.Equal(t, float64(10), coupon["discount"])
	assert.Equal(t, float64(6000), coupon["discount_amount"])
	assert.Equal(t, float64(50000), coupon["min_purchase"])
}

func TestValidateCoupon_CaseInsensitiveCode(t *testing.T) {
	r := setupTest(t)
	createCoupon(t, "DISKON10", 10, nil)

	w := doJSON(t, r, http.MethodPost, "/api/coupons/validate", "", map[string]interface{}{
		"code":     "diskon10",
		"subtotal": 60000,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateCoupon_UnknownCode(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/coupons/validate", "", map[string]interface{}{
		"code": "NADA",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Kode kupon tidak ditemukan", decode(t, w)["error"])
}

func TestValidateCoupon_BelowMinPurchase(t *testing.T) {
	r := setupTest(t)
	createCoupon(t, "DISKON10", 10, intPtr(50000))

	w := doJSON(t, r, http.MethodPost, "/api/coupons/validate", "", map[string]interface{}{
		"code":     "DISKON10",
		"subtotal": 40000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Minimal pembelian Rp 50.000 untuk kupon ini", decode(t, w)["error"])
}

func TestValidateCoupon_Expired(t *testing.T) {
	r := setupTest(t)
	coupon := createCoupon(t, "LAMA", 20, nil)
	config.DB.Model(&coupon).Updates(map[string]interface{}{
		"valid_from":  time.Now().Add(-48 * time.Hour),
		"valid_until": time.Now().Add(-24 * time.Hour),
	})

	w := doJSON(t, r, http.MethodPost, "/api/coupons/validate", "", map[string]interface{}{
		"code":     "LAMA",
		"subtotal": 60000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Kupon sudah kadaluarsa", decode(t, w)["error"])
}

func TestActiveCoupons(t *testing.T) {
	r := setupTest(t)
	createCoupon(t, "KECIL", 5, nil)
	createCoupon(t, "BESAR", 25, nil)

	inactive := createCoupon(t, "MATI", 50, nil)
	config.DB.Model(&inactive).Update("is_active", false)

	exhausted := createCoupon(t, "HABIS", 40, nil)
	config.DB.Model(&exhausted).Updates(map[string]interface{}{"max_uses": 1, "used_count": 1})

	w := doJSON(t, r, http.MethodGet, "/api/coupons/active", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	coupons := decode(t, w)["coupons"].([]interface{})
	require.Len(t, coupons, 2)
	// sorted by discount, biggest first
	assert.Equal(t, "BESAR", coupons[0].(map[string]interface{})["code"])
	assert.Equal(t, "KECIL", coupons[1].(map[string]interface{})["code"])
}
