package handlers_test

import (
	"net/http"
	"testing"

	"coffee-shop-api/config"
	"coffee-shop-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSettings(t *testing.T) {
	t.Helper()
	settings := []models.SiteSetting{
		{Key: "store_name", Value: "Kopi Cerita", Label: "Nama Toko", Group: "general"},
		{Key: "open_hours", Value: "08.00 - 22.00", Label: "Jam Buka", Group: "general"},
		{Key: "instagram", Value: "@kopicerita", Label: "Instagram", Group: "social"},
	}
	for i := range settings {
		require.NoError(t, config.DB.Create(&settings[i]).Error)
	}
}

func TestGetSettings(t *testing.T) {
	r := setupTest(t)
	seedSettings(t)

	w := doJSON(t, r, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["settings"], 3)
	values := body["values"].(map[string]interface{})
	assert.Equal(t, "Kopi Cerita", values["store_name"])

	// group filter
	w = doJSON(t, r, http.MethodGet, "/api/settings?group=social", "", nil)
	body = decode(t, w)
	require.Len(t, body["settings"], 1)
	assert.Equal(t, "@kopicerita", body["values"].(map[string]interface{})["instagram"])
}

func TestUpdateSettings(t *testing.T) {
	r := setupTest(t)
	seedSettings(t)
	_, admin := createUser(t, "admin", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings", admin, map[string]interface{}{
		"settings": []map[string]string{
			{"key": "store_name", "value": "Kopi Cerita Baru"},
			{"key": "open_hours", "value": "07.00 - 23.00"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var setting models.SiteSetting
	require.NoError(t, config.DB.Where("key = ?", "store_name").First(&setting).Error)
	assert.Equal(t, "Kopi Cerita Baru", setting.Value)
}

func TestUpdateSettings_CustomerForbidden(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "budi", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings", token, map[string]interface{}{
		"settings": []map[string]string{{"key": "store_name", "value": "x"}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
