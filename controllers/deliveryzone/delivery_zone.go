package deliveryZoneControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

type DeliveryZoneInput struct {
	Country string  `json:"country" binding:"required"`
	State   string  `json:"state"`
	Price   float64 `json:"price" binding:"required"`
	Active  *bool   `json:"active"`
}

// GET /delivery-zones
func GetDeliveryZones(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var zones []models.DeliveryZone
		if err := db.Order("country, state").Find(&zones).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery zones"})
			return
		}
		c.JSON(http.StatusOK, zones)
	}
}

// GET /delivery-zones/price?country=&state=
func GetDeliveryPrice(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		country := c.Query("country")
		if country == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "country is required"})
			return
		}

		var zones []models.DeliveryZone
		if err := db.Where("country ILIKE ?", country).Find(&zones).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery zones"})
			return
		}

		price, ok := models.MatchZonePrice(zones, country, c.Query("state"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No delivery zone for this location"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"price": price})
	}
}

// POST /delivery-zones (admin)
func CreateDeliveryZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DeliveryZoneInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		zone := models.DeliveryZone{
			Country: input.Country,
			State:   input.State,
			Price:   input.Price,
			Active:  true,
		}
		if input.Active != nil {
			zone.Active = *input.Active
		}

		if err := db.Create(&zone).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery zone"})
			return
		}
		c.JSON(http.StatusCreated, zone)
	}
}

// PUT /delivery-zones/:id (admin)
func UpdateDeliveryZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var zone models.DeliveryZone
		if err := db.First(&zone, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery zone not found"})
			return
		}

		var input DeliveryZoneInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		zone.Country = input.Country
		zone.State = input.State
		zone.Price = input.Price
		if input.Active != nil {
			zone.Active = *input.Active
		}

		if err := db.Save(&zone).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery zone"})
			return
		}
		c.JSON(http.StatusOK, zone)
	}
}

// DELETE /delivery-zones/:id (admin)
func DeleteDeliveryZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.DeliveryZone{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery zone"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery zone not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery zone deleted"})
	}
}
