package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// DeleteProduct soft-deletes a product. Order items keep their snapshots, so
// nothing cascades.
func DeleteProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		invalidateProductCache(c, store)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
