package settingsController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}, &models.SocialLink{}))
	return db
}

func settingsRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/settings", GetSettings(db))
	r.GET("/social-links", GetSocialLinks(db))

	r.GET("/admin/settings", GetSettings(db))
	r.PUT("/admin/settings", UpdateSettings(db))
	r.GET("/admin/social-links", GetAllSocialLinks(db))
	r.POST("/admin/social-links", CreateSocialLink(db))
	r.PUT("/admin/social-links/:id", UpdateSocialLink(db))
	r.DELETE("/admin/social-links/:id", DeleteSocialLink(db))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, bytes.NewReader(data)))
	return w
}

func getSettings(t *testing.T, r *gin.Engine) map[string]string {
	t.Helper()

	w := doJSON(r, http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bag map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bag))
	return bag
}

func TestUpdateSettingsUpsertsAndMerges(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	w := doJSON(r, http.MethodPut, "/admin/settings", map[string]string{
		"site_name": "Bonik",
		"currency":  "BDT",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	bag := getSettings(t, r)
	assert.Equal(t, "Bonik", bag["site_name"])
	assert.Equal(t, "BDT", bag["currency"])

	// Updating one key leaves the others alone.
	w = doJSON(r, http.MethodPut, "/admin/settings", map[string]string{
		"site_name": "Bonik Living",
	})
	require.Equal(t, http.StatusOK, w.Code)

	bag = getSettings(t, r)
	assert.Equal(t, "Bonik Living", bag["site_name"])
	assert.Equal(t, "BDT", bag["currency"])
	assert.Len(t, bag, 2)

	// Admin reads the same bag through its own route.
	w = doJSON(r, http.MethodGet, "/admin/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var adminBag map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adminBag))
	assert.Equal(t, bag, adminBag)
}

func TestUpdateSettingsRejectsEmptyPayload(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	w := doJSON(r, http.MethodPut, "/admin/settings", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSettingsEmptyBag(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	bag := getSettings(t, r)
	assert.Empty(t, bag)
}

func TestSocialLinksStorefrontFiltersInactive(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	w := doJSON(r, http.MethodPost, "/admin/social-links",
		SocialLinkRequest{Platform: "facebook", URL: "https://facebook.com/bonik"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	inactive := false
	w = doJSON(r, http.MethodPost, "/admin/social-links",
		SocialLinkRequest{Platform: "x", URL: "https://x.com/bonik", IsActive: &inactive})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/social-links", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var visible []models.SocialLink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &visible))
	require.Len(t, visible, 1)
	assert.Equal(t, "facebook", visible[0].Platform)

	w = doJSON(r, http.MethodGet, "/admin/social-links", nil)
	var all []models.SocialLink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestCreateSocialLinkValidatesURL(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	w := doJSON(r, http.MethodPost, "/admin/social-links",
		SocialLinkRequest{Platform: "facebook", URL: "not-a-url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteSocialLink(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	link := models.SocialLink{Platform: "instagram", URL: "https://instagram.com/bonik", IsActive: true}
	require.NoError(t, db.Create(&link).Error)

	inactive := false
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/admin/social-links/%d", link.ID),
		gin.H{"is_active": inactive})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.SocialLink
	require.NoError(t, db.First(&updated, link.ID).Error)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "instagram", updated.Platform)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/social-links/%d", link.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/social-links/%d", link.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
