package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/DSALAUDDIN/eshopNew-sub000/cache"
	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// Import sheet columns, one product per row after the header:
// Name | Slug | SKU | Price | OriginalPrice | Stock | CategoryID | Images
// Images is a comma-separated URL list. Rows are upserted by SKU; rows with
// a missing name/slug/sku, an unparsable price or an unknown category are
// counted as skipped, never aborting the rest of the file.
func ImportProductsFromExcel(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(0)
			slug := get(1)
			sku := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			originalPrice, _ := strconv.ParseFloat(get(4), 64)
			stock, _ := strconv.Atoi(get(5))
			categoryID, categoryErr := strconv.ParseUint(get(6), 10, 64)
			imagesCell := get(7)

			if name == "" || slug == "" || sku == "" || priceErr != nil || price <= 0 {
				skippedCount++
				continue
			}

			var images models.ImageList
			for _, part := range strings.Split(imagesCell, ",") {
				if url := strings.TrimSpace(part); url != "" {
					images = append(images, url)
				}
			}

			var existing models.Product
			err := db.Where("sku = ?", sku).First(&existing).Error
			if err == nil {
				existing.Name = name
				existing.Slug = slug
				existing.Price = price
				existing.OriginalPrice = originalPrice
				existing.StockQuantity = stock
				existing.InStock = stock > 0
				if len(images) > 0 {
					existing.Images = images
				}
				if categoryErr == nil {
					var category models.Category
					if db.First(&category, uint(categoryID)).Error == nil {
						existing.CategoryID = category.ID
					}
				}

				if err := db.Save(&existing).Error; err == nil {
					updatedCount++
				} else {
					skippedCount++
				}
				continue
			}
			if err != gorm.ErrRecordNotFound {
				skippedCount++
				continue
			}

			// New rows need an existing category.
			if categoryErr != nil {
				skippedCount++
				continue
			}
			var category models.Category
			if db.First(&category, uint(categoryID)).Error != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:          name,
				Slug:          slug,
				SKU:           sku,
				Price:         price,
				OriginalPrice: originalPrice,
				Images:        images,
				StockQuantity: stock,
				InStock:       stock > 0,
				IsActive:      true,
				CategoryID:    category.ID,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		if createdCount > 0 || updatedCount > 0 {
			invalidateProductCache(c, store)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
