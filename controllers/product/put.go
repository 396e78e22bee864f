package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// UpdateProductRequest carries only the fields present in the request;
// everything is optional.
type UpdateProductRequest struct {
	Name            *string   `json:"name"`
	Slug            *string   `json:"slug"`
	Description     *string   `json:"description"`
	Price           *float64  `json:"price"`
	OriginalPrice   *float64  `json:"original_price"`
	SKU             *string   `json:"sku"`
	Images          *[]string `json:"images"`
	StockQuantity   *int      `json:"stock_quantity"`
	IsNew           *bool     `json:"is_new"`
	IsSale          *bool     `json:"is_sale"`
	IsFeatured      *bool     `json:"is_featured"`
	IsActive        *bool     `json:"is_active"`
	CategoryID      *uint     `json:"category_id"`
	SubcategoryID   *uint     `json:"subcategory_id"`
	Weight          *float64  `json:"weight"`
	Dimensions      *string   `json:"dimensions"`
	Materials       *string   `json:"materials"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
}

// UpdateProduct applies a partial update to an existing product by ID.
func UpdateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = *req.CategoryID
		}
		if req.SubcategoryID != nil {
			var sub models.Subcategory
			if err := db.Where("id = ? AND category_id = ?", *req.SubcategoryID, product.CategoryID).
				First(&sub).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not belong to category"})
				return
			}
			product.SubcategoryID = req.SubcategoryID
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Slug != nil {
			product.Slug = *req.Slug
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			if *req.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = *req.Price
		}
		if req.OriginalPrice != nil {
			product.OriginalPrice = *req.OriginalPrice
		}
		if req.SKU != nil {
			product.SKU = *req.SKU
		}
		if req.Images != nil {
			product.Images = models.ImageList(*req.Images)
		}
		if req.StockQuantity != nil {
			if *req.StockQuantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock_quantity"})
				return
			}
			product.StockQuantity = *req.StockQuantity
			product.InStock = *req.StockQuantity > 0
		}
		if req.IsNew != nil {
			product.IsNew = *req.IsNew
		}
		if req.IsSale != nil {
			product.IsSale = *req.IsSale
		}
		if req.IsFeatured != nil {
			product.IsFeatured = *req.IsFeatured
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}
		if req.Weight != nil {
			product.Weight = *req.Weight
		}
		if req.Dimensions != nil {
			product.Dimensions = *req.Dimensions
		}
		if req.Materials != nil {
			product.Materials = *req.Materials
		}
		if req.MetaTitle != nil {
			product.MetaTitle = *req.MetaTitle
		}
		if req.MetaDescription != nil {
			product.MetaDescription = *req.MetaDescription
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		invalidateProductCache(c, store)
		c.JSON(http.StatusOK, product)
	}
}
