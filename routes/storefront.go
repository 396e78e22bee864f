package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	categorycontroller "github.com/DSALAUDDIN/eshopNew-sub000/controllers/category"
	productcontroller "github.com/DSALAUDDIN/eshopNew-sub000/controllers/product"
	reviewController "github.com/DSALAUDDIN/eshopNew-sub000/controllers/review"
	settingsController "github.com/DSALAUDDIN/eshopNew-sub000/controllers/settings"
)

// SetupStorefrontRoutes registers the public read endpoints and customer
// review submission.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	r.GET("/products", productcontroller.GetProducts(db, store, false))
	r.GET("/products/best-selling", productcontroller.GetBestSellingProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db, store))
	r.GET("/products/:id/related", productcontroller.GetRelatedProducts(db))

	r.GET("/categories", categorycontroller.GetCategories(db, store, false))

	r.GET("/reviews", reviewController.GetProductReviews(db))
	r.POST("/reviews", reviewController.CreateReview(db))

	r.GET("/settings", settingsController.GetSettings(db))
	r.GET("/social-links", settingsController.GetSocialLinks(db))
}
