package settingsController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

// GET /settings — the flat bag as one JSON object.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings []models.Setting
		if err := db.Find(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		bag := make(map[string]string, len(settings))
		for _, s := range settings {
			bag[s.Key] = s.Value
		}
		c.JSON(http.StatusOK, bag)
	}
}

// PUT /admin/settings — upserts the submitted keys; keys not in the payload
// are left as they are.
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bag map[string]string
		if err := c.ShouldBindJSON(&bag); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(bag) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for key, value := range bag {
				setting := models.Setting{Key: key, Value: value}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "key"}},
					DoUpdates: clause.AssignmentColumns([]string{"value"}),
				}).Create(&setting).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
	}
}
