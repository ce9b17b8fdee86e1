package messageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

type MessageInput struct {
	ToUserID string `json:"to_user_id"` // empty = message to the shop
	Subject  string `json:"subject"`
	Body     string `json:"body" binding:"required"`
}

// GET /messages?type=inbox|sent
// Admins see shop-addressed messages in their inbox.
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")
		userID := userIDVal.(string)

		boxType := c.DefaultQuery("type", "inbox")
		query := db.Preload("From").Order("created_at DESC")

		switch boxType {
		case "sent":
			query = query.Where("from_user_id = ?", userID)
		case "inbox":
			if roleVal == "admin" {
				query = query.Where("to_user_id = ? OR to_user_id = ''", userID)
			} else {
				query = query.Where("to_user_id = ?", userID)
			}
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be inbox or sent"})
			return
		}

		var messages []models.Message
		if err := query.Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// POST /messages
func CreateMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.ToUserID != "" {
			var recipient models.User
			if err := db.First(&recipient, "id = ?", input.ToUserID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient not found"})
				return
			}
		}

		message := models.Message{
			FromUserID: userIDVal.(string),
			ToUserID:   input.ToUserID,
			Subject:    input.Subject,
			Body:       input.Body,
		}

		if err := db.Create(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}
		c.JSON(http.StatusCreated, message)
	}
}

// PUT /messages/:id/read
func MarkMessageRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userIDVal, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")

		var message models.Message
		if err := db.First(&message, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		// Only the recipient (or an admin for shop-addressed mail) may mark it read
		if message.ToUserID != userIDVal.(string) && !(message.ToUserID == "" && roleVal == "admin") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your message"})
			return
		}

		if err := db.Model(&message).Update("read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message read"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
	}
}

// DELETE /messages/:id
func DeleteMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userIDVal, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")

		var message models.Message
		if err := db.First(&message, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		if message.FromUserID != userIDVal.(string) && message.ToUserID != userIDVal.(string) && roleVal != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your message"})
			return
		}

		if err := db.Delete(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
	}
}
