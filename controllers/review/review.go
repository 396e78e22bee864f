package reviewController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

type CreateReviewRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Title         string `json:"title"`
	Comment       string `json:"comment" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
}

// POST /reviews — customer submission. The review always starts unapproved,
// whatever the payload says.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		review := models.Review{
			ProductID:     req.ProductID,
			Rating:        req.Rating,
			Title:         req.Title,
			Comment:       req.Comment,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			IsApproved:    false,
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// GET /reviews?product_id= — approved reviews only (storefront).
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ? AND is_approved = ?", productID, true).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// GET /admin/reviews?status=pending|approved|all
func GetAllReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Review{})

		switch c.DefaultQuery("status", "all") {
		case "pending":
			query = query.Where("is_approved = ?", false)
		case "approved":
			query = query.Where("is_approved = ?", true)
		case "all":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be pending, approved or all"})
			return
		}

		var reviews []models.Review
		if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

type UpdateReviewRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// PUT /admin/reviews/:id — approve or reject.
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Review{}).Where("id = ?", id).
			Update("is_approved", *req.IsApproved)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
	}
}

// DELETE /admin/reviews/:id — hard delete.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Review{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
