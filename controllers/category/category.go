package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"is_active"`
}

func CreateCategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		category := models.Category{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			Image:       req.Image,
			IsActive:    isActive,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		invalidateCategoryCache(c, store)
		c.JSON(http.StatusCreated, category)
	}
}

// GetCategories lists categories with their subcategories. The storefront
// variant filters to active ones and is cache-backed.
func GetCategories(db *gorm.DB, store *cache.Cache, includeInactive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheKey := cache.CategoryPrefix + "list"
		if store != nil && !includeInactive {
			var cached []models.Category
			if hit, err := store.Get(c.Request.Context(), cacheKey, &cached); err == nil && hit {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		query := db.Preload("Subcategories")
		if !includeInactive {
			query = query.Where("is_active = ?", true)
		}

		var categories []models.Category
		if err := query.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		if store != nil && !includeInactive {
			_ = store.Set(c.Request.Context(), cacheKey, categories)
		}

		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var req struct {
			Name        *string `json:"name"`
			Slug        *string `json:"slug"`
			Description *string `json:"description"`
			Image       *string `json:"image"`
			IsActive    *bool   `json:"is_active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Name != nil {
			category.Name = *req.Name
		}
		if req.Slug != nil {
			category.Slug = *req.Slug
		}
		if req.Description != nil {
			category.Description = *req.Description
		}
		if req.Image != nil {
			category.Image = *req.Image
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		invalidateCategoryCache(c, store)
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category and all of its subcategories in one
// transaction. Products keep their rows; their category_id goes stale and
// they drop out of category listings.
func DeleteCategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("category_id = ?", category.ID).
				Delete(&models.Subcategory{}).Error; err != nil {
				return err
			}
			return tx.Delete(&category).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		invalidateCategoryCache(c, store)
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

func invalidateCategoryCache(c *gin.Context, store *cache.Cache) {
	if store == nil {
		return
	}
	_ = store.InvalidatePrefix(c.Request.Context(), cache.CategoryPrefix)
}
