package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/DSALAUDDIN/eshopNew-sub000/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Checkout: validate, lock stock, create in PENDING/PENDING
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Confirmation-page lookup by order number
		orders.GET("/:orderNumber", orderControllers.GetOrderByNumberHandler(db))
	}
}
