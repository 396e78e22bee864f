package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// GetProductByID returns a single active product by numeric id or slug.
// URL param: /products/:id
func GetProductByID(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		cacheKey := cache.ProductPrefix + "one:" + idParam
		if store != nil {
			var cached models.Product
			if hit, err := store.Get(c.Request.Context(), cacheKey, &cached); err == nil && hit {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		query := db.Preload("Category").Where("is_active = ?", true)
		if id, err := strconv.Atoi(idParam); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("slug = ?", idParam)
		}

		var product models.Product
		if err := query.First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if store != nil {
			_ = store.Set(c.Request.Context(), cacheKey, product)
		}

		c.JSON(http.StatusOK, product)
	}
}

// GetRelatedProducts returns other active products in the same category.
// URL: /products/:id/related?limit=4
func GetRelatedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		limit := 4
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var related []models.Product
		if err := db.
			Where("category_id = ? AND id <> ? AND is_active = ?", product.CategoryID, product.ID, true).
			Order("created_at DESC").
			Limit(limit).
			Find(&related).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch related products"})
			return
		}

		c.JSON(http.StatusOK, related)
	}
}

// GetBestSellingProducts ranks active products by total quantity ordered.
// URL: /products/best-selling?limit=8
func GetBestSellingProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 8
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		var products []models.Product
		if err := db.
			Joins("JOIN order_items oi ON oi.product_id = products.id").
			Where("products.is_active = ?", true).
			Group("products.id").
			Order("SUM(oi.quantity) DESC").
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch best sellers"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
