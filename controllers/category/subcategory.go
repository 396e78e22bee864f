package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

type SubcategoryRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

// CreateSubcategory rejects the request when the parent category is missing.
func CreateSubcategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubcategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var parent models.Category
		if err := db.First(&parent, req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		sub := models.Subcategory{
			CategoryID: req.CategoryID,
			Name:       req.Name,
			Slug:       req.Slug,
			IsActive:   isActive,
		}

		if err := db.Create(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
			return
		}

		invalidateCategoryCache(c, store)
		c.JSON(http.StatusCreated, sub)
	}
}

func UpdateSubcategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var sub models.Subcategory
		if err := db.First(&sub, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}

		var req struct {
			CategoryID *uint   `json:"category_id"`
			Name       *string `json:"name"`
			Slug       *string `json:"slug"`
			IsActive   *bool   `json:"is_active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.CategoryID != nil {
			var parent models.Category
			if err := db.First(&parent, *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
				return
			}
			sub.CategoryID = *req.CategoryID
		}
		if req.Name != nil {
			sub.Name = *req.Name
		}
		if req.Slug != nil {
			sub.Slug = *req.Slug
		}
		if req.IsActive != nil {
			sub.IsActive = *req.IsActive
		}

		if err := db.Save(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subcategory"})
			return
		}

		invalidateCategoryCache(c, store)
		c.JSON(http.StatusOK, sub)
	}
}

func DeleteSubcategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Subcategory{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}

		invalidateCategoryCache(c, store)
		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
	}
}
