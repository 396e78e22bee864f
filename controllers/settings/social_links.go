package settingsController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	IsActive *bool  `json:"is_active"`
}

// GET /social-links — active links only (storefront footer).
func GetSocialLinks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var links []models.SocialLink
		if err := db.Where("is_active = ?", true).Find(&links).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch social links"})
			return
		}
		c.JSON(http.StatusOK, links)
	}
}

// GET /admin/social-links — everything, inactive included.
func GetAllSocialLinks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var links []models.SocialLink
		if err := db.Find(&links).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch social links"})
			return
		}
		c.JSON(http.StatusOK, links)
	}
}

func CreateSocialLink(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SocialLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		link := models.SocialLink{Platform: req.Platform, URL: req.URL, IsActive: isActive}
		if err := db.Create(&link).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create social link"})
			return
		}

		c.JSON(http.StatusCreated, link)
	}
}

func UpdateSocialLink(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var link models.SocialLink
		if err := db.First(&link, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
			return
		}

		var req struct {
			Platform *string `json:"platform"`
			URL      *string `json:"url"`
			IsActive *bool   `json:"is_active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Platform != nil {
			link.Platform = *req.Platform
		}
		if req.URL != nil {
			link.URL = *req.URL
		}
		if req.IsActive != nil {
			link.IsActive = *req.IsActive
		}

		if err := db.Save(&link).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update social link"})
			return
		}

		c.JSON(http.StatusOK, link)
	}
}

func DeleteSocialLink(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.SocialLink{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete social link"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Social link deleted successfully"})
	}
}
