package orderControllers

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

// PUT /orders/:orderID/payment-proof
// The customer uploads a screenshot of their bank transfer; the order's
// payment moves to under_review until an admin confirms it.
func UploadPaymentProofHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, userIDVal.(string)).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already paid"})
			return
		}

		file, err := c.FormFile("screenshot")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment screenshot is required"})
			return
		}

		base := os.Getenv("UPLOAD_DIR")
		if base == "" {
			base = "./uploads"
		}
		saveDir := filepath.Join(base, "payments")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		name := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		name = strings.ReplaceAll(name, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), name, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save screenshot"})
			return
		}

		updates := map[string]interface{}{
			"payment_proof":  fmt.Sprintf("/uploads/payments/%s", filename),
			"payment_status": models.PaymentStatusUnderReview,
		}
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Payment proof uploaded",
			"payment_proof":  updates["payment_proof"],
			"payment_status": models.PaymentStatusUnderReview,
		})
	}
}
