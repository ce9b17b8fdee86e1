package loyaltyShopControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mayanshop/mayan-api/models"
)

type LoyaltyProductInput struct {
	EName      string  `json:"ename" binding:"required"`
	ARName     string  `json:"arname"`
	Image      string  `json:"image"`
	PointsCost float64 `json:"points_cost" binding:"required"`
	Stock      int     `json:"stock"`
}

type RedeemInput struct {
	LoyaltyProductID uint `json:"loyalty_product_id" binding:"required"`
}

type SettingsInput struct {
	Enabled   *bool    `json:"enabled"`
	MinPoints *float64 `json:"min_points"`
}

// GET /loyalty/settings
func GetLoyaltySettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.LoyaltySettings
		if err := db.FirstOrCreate(&settings, models.LoyaltySettings{ID: 1}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /loyalty/settings (admin)
func UpdateLoyaltySettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.LoyaltySettings
		if err := db.FirstOrCreate(&settings, models.LoyaltySettings{ID: 1}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty settings"})
			return
		}

		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Enabled != nil {
			updates["enabled"] = *input.Enabled
		}
		if input.MinPoints != nil {
			updates["min_points"] = *input.MinPoints
		}

		if len(updates) > 0 {
			if err := db.Model(&settings).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update loyalty settings"})
				return
			}
		}
		c.JSON(http.StatusOK, settings)
	}
}

// GET /loyalty/products
func GetLoyaltyProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.LoyaltyProduct
		if err := db.Order("points_cost").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /loyalty/products (admin)
func CreateLoyaltyProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoyaltyProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.LoyaltyProduct{
			EName:      input.EName,
			ARName:     input.ARName,
			Image:      input.Image,
			PointsCost: input.PointsCost,
			Stock:      input.Stock,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create loyalty product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /loyalty/products/:id (admin)
func UpdateLoyaltyProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.LoyaltyProduct
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty product not found"})
			return
		}

		var input LoyaltyProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product.EName = input.EName
		product.ARName = input.ARName
		product.Image = input.Image
		product.PointsCost = input.PointsCost
		product.Stock = input.Stock

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update loyalty product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /loyalty/products/:id (admin)
func DeleteLoyaltyProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.LoyaltyProduct{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete loyalty product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Loyalty product deleted"})
	}
}

// POST /loyalty/redemptions
// Exchanges points for a catalog item. The shop must be enabled, the
// user's balance above the unlock threshold and sufficient for the
// item, and the item in stock.
func RedeemLoyaltyProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input RedeemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var redemption models.Redemption

		err := db.Transaction(func(tx *gorm.DB) error {
			var settings models.LoyaltySettings
			if err := tx.FirstOrCreate(&settings, models.LoyaltySettings{ID: 1}).Error; err != nil {
				return err
			}
			if !settings.Enabled {
				return errors.New("loyalty shop is disabled")
			}

			var user models.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&user, "id = ?", userID).Error; err != nil {
				return err
			}
			if user.LoyaltyPoints < settings.MinPoints {
				return errors.New("loyalty balance below the shop threshold")
			}

			var product models.LoyaltyProduct
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, input.LoyaltyProductID).Error; err != nil {
				return errors.New("loyalty product not found")
			}
			if product.Stock < 1 {
				return errors.New("loyalty product out of stock")
			}
			if user.LoyaltyPoints < product.PointsCost {
				return errors.New("insufficient loyalty points")
			}

			if err := tx.Model(&product).
				Update("stock", gorm.Expr("stock - 1")).Error; err != nil {
				return err
			}
			if err := tx.Model(&user).
				Update("loyalty_points", gorm.Expr("loyalty_points - ?", product.PointsCost)).Error; err != nil {
				return err
			}

			redemption = models.Redemption{
				UserID:           userID,
				LoyaltyProductID: product.ID,
				PointsSpent:      product.PointsCost,
				Status:           models.RedemptionStatusPending,
			}
			return tx.Create(&redemption).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, redemption)
	}
}

// GET /loyalty/redemptions — the caller's own redemptions.
func GetUserRedemptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var redemptions []models.Redemption
		if err := db.Where("user_id = ?", userIDVal.(string)).
			Preload("LoyaltyProduct").
			Order("created_at DESC").
			Find(&redemptions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redemptions"})
			return
		}
		c.JSON(http.StatusOK, redemptions)
	}
}

// GET /admin/loyalty/redemptions
func GetAllRedemptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User").Preload("LoyaltyProduct").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", strings.ToLower(status))
		}

		var redemptions []models.Redemption
		if err := query.Find(&redemptions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redemptions"})
			return
		}
		c.JSON(http.StatusOK, redemptions)
	}
}

// PUT /admin/loyalty/redemptions/:id
// Rejecting a pending redemption refunds the points and restores stock.
func UpdateRedemptionStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var newStatus models.RedemptionStatus
		switch strings.ToLower(req.Status) {
		case string(models.RedemptionStatusFulfilled):
			newStatus = models.RedemptionStatusFulfilled
		case string(models.RedemptionStatusRejected):
			newStatus = models.RedemptionStatusRejected
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be fulfilled or rejected"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var redemption models.Redemption
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&redemption, id).Error; err != nil {
				return err
			}
			if redemption.Status != models.RedemptionStatusPending {
				return errors.New("redemption is already settled")
			}

			if newStatus == models.RedemptionStatusRejected {
				if err := tx.Model(&models.User{}).Where("id = ?", redemption.UserID).
					Update("loyalty_points", gorm.Expr("loyalty_points + ?", redemption.PointsSpent)).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.LoyaltyProduct{}).Where("id = ?", redemption.LoyaltyProductID).
					Update("stock", gorm.Expr("stock + 1")).Error; err != nil {
					return err
				}
			}

			return tx.Model(&redemption).Update("status", newStatus).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Redemption not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Redemption updated"})
	}
}
