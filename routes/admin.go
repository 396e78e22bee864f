package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/auth"
	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	categorycontroller "github.com/DSALAUDDIN/eshopNew-sub000/controllers/category"
	orderControllers "github.com/DSALAUDDIN/eshopNew-sub000/controllers/order"
	productcontroller "github.com/DSALAUDDIN/eshopNew-sub000/controllers/product"
	reviewController "github.com/DSALAUDDIN/eshopNew-sub000/controllers/review"
	settingsController "github.com/DSALAUDDIN/eshopNew-sub000/controllers/settings"
	uploadController "github.com/DSALAUDDIN/eshopNew-sub000/controllers/upload"
	"github.com/DSALAUDDIN/eshopNew-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints plus the login route
// that issues admin tokens.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	r.POST("/auth/admin/login", auth.AdminLogin(db))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db, store, true))
			productAdmin.POST("", productcontroller.CreateProduct(db, store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, store))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db, store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categorycontroller.GetCategories(db, store, true))
			categoryAdmin.POST("", categorycontroller.CreateCategory(db, store))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(db, store))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(db, store))
		}
		subcategoryAdmin := adminGroup.Group("/subcategories")
		{
			subcategoryAdmin.POST("", categorycontroller.CreateSubcategory(db, store))
			subcategoryAdmin.PUT("/:id", categorycontroller.UpdateSubcategory(db, store))
			subcategoryAdmin.DELETE("/:id", categorycontroller.DeleteSubcategory(db, store))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID", orderControllers.UpdateOrderHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Review Moderation ───────────
		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", reviewController.GetAllReviews(db))
			reviewAdmin.PUT("/:id", reviewController.UpdateReview(db))
			reviewAdmin.DELETE("/:id", reviewController.DeleteReview(db))
		}

		// ─────────── Settings & Social Links ───────────
		adminGroup.GET("/settings", settingsController.GetSettings(db))
		adminGroup.PUT("/settings", settingsController.UpdateSettings(db))
		socialAdmin := adminGroup.Group("/social-links")
		{
			socialAdmin.GET("", settingsController.GetAllSocialLinks(db))
			socialAdmin.POST("", settingsController.CreateSocialLink(db))
			socialAdmin.PUT("/:id", settingsController.UpdateSocialLink(db))
			socialAdmin.DELETE("/:id", settingsController.DeleteSocialLink(db))
		}

		// ─────────── Uploads ───────────
		adminGroup.POST("/upload", uploadController.UploadFile())
	}
}
