package orderControllers

import (
	"bytes"
	"encoding/json"
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
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{}, &models.Category{}, &models.Subcategory{},
		&models.Cart{}, &models.CartItem{}, &models.CartFavorite{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedCart creates a category, a product and a cart holding qty of it.
func seedCart(t *testing.T, db *gorm.DB, token string, price float64, qty, stock int) models.Product {
	t.Helper()

	category := models.Category{Name: "Home Decor " + token, Slug: "home-decor-" + token, IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:          "Clay Vase " + token,
		Slug:          "clay-vase-" + token,
		SKU:           "CV-" + token,
		Price:         price,
		StockQuantity: stock,
		InStock:       true,
		IsActive:      true,
		CategoryID:    category.ID,
	}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{Token: token}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:      cart.CartID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       price,
		Quantity:    qty,
	}).Error)

	return product
}

func TestPlaceOrderTotals(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "tok-totals", 500, 2, 10)

	req := validRequest()
	req.CartToken = "tok-totals"

	order, err := PlaceOrder(db, req)
	require.NoError(t, err)

	// subtotal 1000 is under the free-shipping threshold
	assert.Equal(t, 1000.0, order.Subtotal)
	assert.Equal(t, StandardShippingFee, order.ShippingAmount)
	assert.Equal(t, 1100.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.NotEmpty(t, order.OrderNumber)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 500.0, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestPlaceOrderSnapshotsPrice(t *testing.T) {
	db := setupTestDB(t)
	product := seedCart(t, db, "tok-snap", 500, 1, 5)

	// Price changes after the item went in the cart.
	require.NoError(t, db.Model(&product).Update("price", 999).Error)

	req := validRequest()
	req.CartToken = "tok-snap"

	order, err := PlaceOrder(db, req)
	require.NoError(t, err)
	assert.Equal(t, 500.0, order.Subtotal, "order must keep the cart-time price")
}

func TestPlaceOrderFreeShippingAboveThreshold(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "tok-free", 1200, 2, 10) // subtotal 2400

	req := validRequest()
	req.CartToken = "tok-free"

	order, err := PlaceOrder(db, req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.ShippingAmount)
	assert.Equal(t, 2400.0, order.TotalAmount)
}

func TestPlaceOrderDeductsStockAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	product := seedCart(t, db, "tok-stock", 300, 3, 5)

	req := validRequest()
	req.CartToken = "tok-stock"

	_, err := PlaceOrder(db, req)
	require.NoError(t, err)

	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 2, after.StockQuantity)
	assert.True(t, after.InStock)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count, "cart must be empty after checkout")
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	product := seedCart(t, db, "tok-short", 300, 4, 2)

	req := validRequest()
	req.CartToken = "tok-short"

	_, err := PlaceOrder(db, req)
	require.Error(t, err)

	// The transaction must leave stock and cart untouched.
	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 2, after.StockQuantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Cart{Token: "tok-empty"}).Error)

	req := validRequest()
	req.CartToken = "tok-empty"

	_, err := PlaceOrder(db, req)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func placeOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders/place", PlaceOrderHandler(db))
	return r
}

func TestPlaceOrderHandlerRejectsBadEmailBeforeDB(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "tok-handler", 500, 2, 10)
	r := placeOrderRouter(db)

	req := validRequest()
	req.CartToken = "tok-handler"
	req.CustomerEmail = "bad-email"

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/place", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "customer_email")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "invalid payloads must never create orders")
}

func TestPlaceOrderHandlerSuccess(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "tok-ok", 500, 2, 10)
	r := placeOrderRouter(db)

	req := validRequest()
	req.CartToken = "tok-ok"

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/place", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		OrderNumber string  `json:"order_number"`
		TotalAmount float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderNumber)
	assert.Equal(t, 1100.0, resp.TotalAmount)
}

func TestGetOrderByNumberHandler(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "tok-lookup", 500, 1, 5)

	req := validRequest()
	req.CartToken = "tok-lookup"
	order, err := PlaceOrder(db, req)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/:orderNumber", GetOrderByNumberHandler(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/"+order.OrderNumber, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/no-such-order", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
