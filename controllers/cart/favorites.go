package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// POST /cart/favorites/:product_id — flips membership: favoriting twice
// leaves the product unfavorited again.
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := loadCart(c, db, false)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		var fav models.CartFavorite
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
			First(&fav).Error
		if err == nil {
			if err := db.Delete(&fav).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"favorited": false})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite"})
			return
		}

		var product models.Product
		if err := db.First(&product, c.Param("product_id")).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		fav = models.CartFavorite{CartID: cart.CartID, ProductID: product.ID}
		if err := db.Create(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorited": true})
	}
}
