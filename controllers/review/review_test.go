package reviewController

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
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Review{},
	))
	return db
}

func reviewRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reviews", CreateReview(db))
	r.GET("/reviews", GetProductReviews(db))

	r.GET("/admin/reviews", GetAllReviews(db))
	r.PUT("/admin/reviews/:id", UpdateReview(db))
	r.DELETE("/admin/reviews/:id", DeleteReview(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()

	category := models.Category{Name: "Decor", Slug: "decor", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name: "Clay Vase", Slug: "clay-vase", SKU: "SKU-1",
		Price: 1200, IsActive: true, CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
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

func listReviews(t *testing.T, r *gin.Engine, path string) []models.Review {
	t.Helper()

	w := doJSON(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	return reviews
}

func TestCreateReviewStartsUnapproved(t *testing.T) {
	db := setupTestDB(t)
	r := reviewRouter(db)
	product := seedProduct(t, db)

	w := doJSON(r, http.MethodPost, "/reviews", CreateReviewRequest{
		ProductID:    product.ID,
		Rating:       5,
		Comment:      "Beautiful finish, arrived intact.",
		CustomerName: "Rahim Uddin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.IsApproved)

	// Not visible on the storefront until approved.
	assert.Empty(t, listReviews(t, r, fmt.Sprintf("/reviews?product_id=%d", product.ID)))
}

func TestCreateReviewValidation(t *testing.T) {
	db := setupTestDB(t)
	r := reviewRouter(db)
	product := seedProduct(t, db)

	cases := []struct {
		name string
		req  CreateReviewRequest
	}{
		{"rating too high", CreateReviewRequest{ProductID: product.ID, Rating: 6, Comment: "x", CustomerName: "A"}},
		{"rating missing", CreateReviewRequest{ProductID: product.ID, Comment: "x", CustomerName: "A"}},
		{"comment missing", CreateReviewRequest{ProductID: product.ID, Rating: 4, CustomerName: "A"}},
		{"unknown product", CreateReviewRequest{ProductID: 9999, Rating: 4, Comment: "x", CustomerName: "A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/reviews", tc.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAdminReviewTabs(t *testing.T) {
	db := setupTestDB(t)
	r := reviewRouter(db)
	product := seedProduct(t, db)

	pending := models.Review{ProductID: product.ID, Rating: 4, Comment: "waiting", CustomerName: "A"}
	approved := models.Review{ProductID: product.ID, Rating: 5, Comment: "shown", CustomerName: "B", IsApproved: true}
	require.NoError(t, db.Create(&pending).Error)
	require.NoError(t, db.Create(&approved).Error)

	assert.Len(t, listReviews(t, r, "/admin/reviews"), 2)
	assert.Len(t, listReviews(t, r, "/admin/reviews?status=all"), 2)

	got := listReviews(t, r, "/admin/reviews?status=pending")
	require.Len(t, got, 1)
	assert.Equal(t, "waiting", got[0].Comment)

	got = listReviews(t, r, "/admin/reviews?status=approved")
	require.Len(t, got, 1)
	assert.Equal(t, "shown", got[0].Comment)

	w := doJSON(r, http.MethodGet, "/admin/reviews?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveReviewMovesItToStorefront(t *testing.T) {
	db := setupTestDB(t)
	r := reviewRouter(db)
	product := seedProduct(t, db)

	review := models.Review{ProductID: product.ID, Rating: 5, Comment: "great", CustomerName: "A"}
	require.NoError(t, db.Create(&review).Error)

	approve := true
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/admin/reviews/%d", review.ID),
		UpdateReviewRequest{IsApproved: &approve})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got := listReviews(t, r, fmt.Sprintf("/reviews?product_id=%d", product.ID))
	require.Len(t, got, 1)
	assert.Equal(t, review.ID, got[0].ID)

	assert.Empty(t, listReviews(t, r, "/admin/reviews?status=pending"))
}

func TestUpdateReviewRequiresFlag(t *testing.T) {
	db := setupTestDB(t)
	r := reviewRouter(db)
	product := seedProduct(t, db)

	review := models.Review{ProductID: product.ID, Rating: 5, Comment: "great", CustomerName: "A"}
	require.NoError(t, db.Create(&review).Error)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/admin/reviews/%d", review.ID), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	approve := true
	w = doJSON(r, http.MethodPut, "/admin/reviews/9999",
		UpdateReviewRequest{IsApproved: &approve})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReview(t *testing.T) {
	db := setupTestDB(t)
	r := reviewRouter(db)
	product := seedProduct(t, db)

	review := models.Review{ProductID: product.ID, Rating: 3, Comment: "meh", CustomerName: "A"}
	require.NoError(t, db.Create(&review).Error)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/reviews/%d", review.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/reviews/%d", review.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
