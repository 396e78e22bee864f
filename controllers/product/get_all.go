package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// sortColumns whitelists what sort_by may reference; anything else falls back
// to created_at.
var sortColumns = map[string]string{
	"price":      "price",
	"name":       "name",
	"created_at": "created_at",
}

// GetProducts lists products with search / category / price-range / flag
// filters and whitelisted sorting. The storefront variant only sees active
// products; admin passes includeInactive and gets the is_active filter too.
// Full listings are served through the Redis cache when one is wired.
func GetProducts(db *gorm.DB, store *cache.Cache, includeInactive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheKey := cache.ProductPrefix + "list:" + c.Request.URL.RawQuery

		if store != nil && !includeInactive {
			var cached []models.Product
			if hit, err := store.Get(c.Request.Context(), cacheKey, &cached); err == nil && hit {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		search := c.Query("search")
		categoryID := c.Query("category_id")
		subcategoryID := c.Query("subcategory_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Product{}).Preload("Category")
		if !includeInactive {
			query = query.Where("is_active = ?", true)
		} else if v := c.Query("is_active"); v != "" {
			active, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_active"})
				return
			}
			query = query.Where("is_active = ?", active)
		}

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(sku) LIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}
		if subcategoryID != "" {
			if sid, err := strconv.ParseUint(subcategoryID, 10, 64); err == nil {
				query = query.Where("subcategory_id = ?", uint(sid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory_id"})
				return
			}
		}

		for param, column := range map[string]string{
			"featured": "is_featured",
			"new":      "is_new",
			"sale":     "is_sale",
		} {
			if v := c.Query(param); v != "" {
				flag, err := strconv.ParseBool(v)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
					return
				}
				query = query.Where(column+" = ?", flag)
			}
		}

		column, ok := sortColumns[sortBy]
		if !ok {
			column = "created_at"
		}
		orderClause := fmt.Sprintf("%s %s", column, sortOrder)

		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if store != nil && !includeInactive {
			_ = store.Set(c.Request.Context(), cacheKey, products)
		}

		c.JSON(http.StatusOK, products)
	}
}
