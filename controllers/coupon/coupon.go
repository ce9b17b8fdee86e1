package couponControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
	"github.com/mayanshop/mayan-api/pricing"
)

type CouponInput struct {
	Code        string     `json:"code" binding:"required"`
	Type        string     `json:"type"`
	Value       float64    `json:"value" binding:"required"`
	MinPurchase float64    `json:"min_purchase"`
	MaxUses     int        `json:"max_uses"`
	Active      *bool      `json:"active"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type ValidateCouponInput struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal"`
}

func mapCouponType(t string) models.CouponType {
	if strings.ToLower(t) == string(models.CouponTypePercent) {
		return models.CouponTypePercent
	}
	return models.CouponTypeFixed
}

// POST /coupons/validate
// Returns the discount for a code against a subtotal, with the same
// business errors the checkout flow raises.
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ValidateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var coupon models.Coupon
		if err := db.Where("code = ?", input.Code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		if !coupon.Active {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon is not active"})
			return
		}
		if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon expired"})
			return
		}
		if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon usage limit reached"})
			return
		}
		if input.Subtotal < coupon.MinPurchase {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subtotal below coupon minimum purchase"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"discount": pricing.CouponDiscount(coupon, input.Subtotal)})
	}
}

// GET /coupons (admin)
func GetAllCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// POST /coupons (admin)
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		coupon := models.Coupon{
			Code:        strings.ToUpper(strings.TrimSpace(input.Code)),
			Type:        mapCouponType(input.Type),
			Value:       input.Value,
			MinPurchase: input.MinPurchase,
			MaxUses:     input.MaxUses,
			Active:      true,
			ExpiresAt:   input.ExpiresAt,
		}
		if input.Active != nil {
			coupon.Active = *input.Active
		}

		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// PUT /coupons/:id (admin)
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var coupon models.Coupon
		if err := db.First(&coupon, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		coupon.Code = strings.ToUpper(strings.TrimSpace(input.Code))
		coupon.Type = mapCouponType(input.Type)
		coupon.Value = input.Value
		coupon.MinPurchase = input.MinPurchase
		coupon.MaxUses = input.MaxUses
		coupon.ExpiresAt = input.ExpiresAt
		if input.Active != nil {
			coupon.Active = *input.Active
		}

		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /coupons/:id (admin)
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Coupon{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
