package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// CreateProductRequest is the explicit admin payload; image files go through
// /admin/upload first and arrive here as URLs.
type CreateProductRequest struct {
	Name            string   `json:"name" binding:"required"`
	Slug            string   `json:"slug" binding:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice   float64  `json:"original_price"`
	SKU             string   `json:"sku" binding:"required"`
	Images          []string `json:"images"`
	StockQuantity   int      `json:"stock_quantity" binding:"min=0"`
	IsNew           bool     `json:"is_new"`
	IsSale          bool     `json:"is_sale"`
	IsFeatured      bool     `json:"is_featured"`
	IsActive        *bool    `json:"is_active"`
	CategoryID      uint     `json:"category_id" binding:"required"`
	SubcategoryID   *uint    `json:"subcategory_id"`
	Weight          float64  `json:"weight"`
	Dimensions      string   `json:"dimensions"`
	Materials       string   `json:"materials"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
}

// CreateProduct creates a new product under an existing category.
func CreateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}
		if req.SubcategoryID != nil {
			var sub models.Subcategory
			if err := db.Where("id = ? AND category_id = ?", *req.SubcategoryID, req.CategoryID).
				First(&sub).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not belong to category"})
				return
			}
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		product := models.Product{
			Name:            req.Name,
			Slug:            req.Slug,
			Description:     req.Description,
			Price:           req.Price,
			OriginalPrice:   req.OriginalPrice,
			SKU:             req.SKU,
			Images:          models.ImageList(req.Images),
			InStock:         req.StockQuantity > 0,
			StockQuantity:   req.StockQuantity,
			IsNew:           req.IsNew,
			IsSale:          req.IsSale,
			IsFeatured:      req.IsFeatured,
			IsActive:        isActive,
			CategoryID:      req.CategoryID,
			SubcategoryID:   req.SubcategoryID,
			Weight:          req.Weight,
			Dimensions:      req.Dimensions,
			Materials:       req.Materials,
			MetaTitle:       req.MetaTitle,
			MetaDescription: req.MetaDescription,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		invalidateProductCache(c, store)
		c.JSON(http.StatusCreated, product)
	}
}

func invalidateProductCache(c *gin.Context, store *cache.Cache) {
	if store == nil {
		return
	}
	_ = store.InvalidatePrefix(c.Request.Context(), cache.ProductPrefix)
}
