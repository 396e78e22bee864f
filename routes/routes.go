package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
)

// SetupRoutes is the single entry-point that wires up the storefront, cart,
// order and admin route groups. store may be nil when Redis is not
// configured; caching is simply skipped then.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	// Public storefront (no middleware)
	SetupStorefrontRoutes(r, db, store)

	// Cart routes (X-Cart-Token based)
	SetupCartRoutes(r, db)

	// Checkout + order confirmation
	SetupOrderRoutes(r, db)

	// Admin routes (API-key / JWT protected)
	SetupAdminRoutes(r, db, store)
}
