package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/DSALAUDDIN/eshopNew-sub000/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		cart.POST("/token", cartControllers.CreateCart(db))
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/items", cartControllers.AddCartItem(db))
		cart.PUT("/items/:product_id", cartControllers.SetCartItemQuantity(db))
		cart.DELETE("/items/:product_id", cartControllers.DeleteCartItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
		cart.POST("/favorites/:product_id", cartControllers.ToggleFavorite(db))
	}
}
