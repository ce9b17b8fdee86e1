package supportControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

type SupportInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Body  string `json:"body" binding:"required"`
}

// POST /support — public contact form.
func CreateSupportTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SupportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ticket := models.SupportTicket{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
			Body:  input.Body,
		}

		if err := db.Create(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit support request"})
			return
		}
		c.JSON(http.StatusCreated, ticket)
	}
}

// GET /support (admin)
func GetSupportTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if c.Query("resolved") == "false" {
			query = query.Where("resolved = ?", false)
		}

		var tickets []models.SupportTicket
		if err := query.Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch support tickets"})
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

// PUT /support/:id/resolve (admin)
func ResolveSupportTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Model(&models.SupportTicket{}).Where("id = ?", id).Update("resolved", true)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve ticket"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Ticket resolved"})
	}
}
