package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

var ErrCartEmpty = errors.New("cart is empty")

// generateOrderNumber yields e.g. 20250908130500-<uuid4>.
func generateOrderNumber() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder converts the cart behind req.CartToken into an Order in
// PENDING/PENDING. Stock is deducted under row locks, item prices are
// snapshots, and the cart is cleared — all in one transaction.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("token = ?", req.CartToken).First(&cart).Error; err != nil {
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, ErrCartEmpty
	}

	shippingAddr := req.ShippingAddress
	if req.ShippingSameAsBilling {
		shippingAddr = req.BillingAddress
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		var orderItems []models.OrderItem

		for _, item := range cart.Items {
			// SQLite has no row locks; it is single-writer anyway.
			q := tx
			if tx.Dialector.Name() != "sqlite" {
				q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var product models.Product
			if err := q.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.StockQuantity < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}

			product.StockQuantity -= item.Quantity
			product.InStock = product.StockQuantity > 0
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			subtotal += item.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				Price:        item.Price,
				Quantity:     item.Quantity,
			})
		}

		shippingAmount := ShippingCost(req.DeliveryMethod, subtotal)

		order = models.Order{
			OrderNumber:     generateOrderNumber(),
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   req.PaymentMethod,
			DeliveryMethod:  req.DeliveryMethod,
			Subtotal:        subtotal,
			ShippingAmount:  shippingAmount,
			TotalAmount:     subtotal + shippingAmount,
			BillingAddress:  req.BillingAddress.toModel(),
			ShippingAddress: shippingAddr.toModel(),
			Notes:           req.Notes,
			Items:           orderItems,
			CreatedAt:       time.Now(),
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Reset-on-success: the cart empties with the order creation.
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrs})
			return
		}

		order, err := PlaceOrder(db, req)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"order_number":    order.OrderNumber,
			"subtotal":        order.Subtotal,
			"shipping_amount": order.ShippingAmount,
			"total_amount":    order.TotalAmount,
		})
	}
}

// GET /orders/:orderNumber — public confirmation-page lookup.
func GetOrderByNumberHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")
		if orderNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderNumber is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Where("order_number = ?", orderNumber).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
