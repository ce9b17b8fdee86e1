package settingsControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

func loadSettings(db *gorm.DB) (models.SiteSettings, error) {
	settings := models.SiteSettings{ID: 1, DeliveryFee: models.DefaultDeliveryFee}
	err := db.FirstOrCreate(&settings, models.SiteSettings{ID: 1}).Error
	return settings, err
}

// GET /settings (public — storefront reads delivery fee and banner).
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := loadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /settings (admin)
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := loadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}

		var input struct {
			StoreEName   *string  `json:"store_ename"`
			StoreARName  *string  `json:"store_arname"`
			DeliveryFee  *float64 `json:"delivery_fee"`
			SupportEmail *string  `json:"support_email"`
			SupportPhone *string  `json:"support_phone"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if input.StoreEName != nil {
			settings.StoreEName = *input.StoreEName
		}
		if input.StoreARName != nil {
			settings.StoreARName = *input.StoreARName
		}
		if input.DeliveryFee != nil {
			if *input.DeliveryFee < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_fee cannot be negative"})
				return
			}
			settings.DeliveryFee = *input.DeliveryFee
		}
		if input.SupportEmail != nil {
			settings.SupportEmail = *input.SupportEmail
		}
		if input.SupportPhone != nil {
			settings.SupportPhone = *input.SupportPhone
		}

		if err := db.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// POST /settings/banner (admin) — multipart upload, replaces the banner.
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("banner")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "banner file is required"})
			return
		}

		base := os.Getenv("UPLOAD_DIR")
		if base == "" {
			base = "./uploads"
		}
		dir := filepath.Join(base, "banners")
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
			return
		}

		ext := filepath.Ext(file.Filename)
		name := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		name = strings.ReplaceAll(name, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), name, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save banner"})
			return
		}

		settings, err := loadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		settings.Banner = fmt.Sprintf("/uploads/banners/%s", filename)
		if err := db.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"banner": settings.Banner})
	}
}
