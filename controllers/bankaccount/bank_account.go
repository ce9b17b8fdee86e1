package bankAccountControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

type BankAccountInput struct {
	BankEName     string `json:"bank_ename" binding:"required"`
	BankARName    string `json:"bank_arname"`
	AccountName   string `json:"account_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	IBAN          string `json:"iban"`
	Active        *bool  `json:"active"`
}

// GET /bank-accounts — customers only see active accounts.
func GetBankAccounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("id")
		if role, _ := c.Get("role"); role != "admin" {
			query = query.Where("active = ?", true)
		}

		var accounts []models.BankAccount
		if err := query.Find(&accounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bank accounts"})
			return
		}
		c.JSON(http.StatusOK, accounts)
	}
}

// POST /bank-accounts (admin)
func CreateBankAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BankAccountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		account := models.BankAccount{
			BankEName:     input.BankEName,
			BankARName:    input.BankARName,
			AccountName:   input.AccountName,
			AccountNumber: input.AccountNumber,
			IBAN:          input.IBAN,
			Active:        true,
		}
		if input.Active != nil {
			account.Active = *input.Active
		}

		if err := db.Create(&account).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bank account"})
			return
		}
		c.JSON(http.StatusCreated, account)
	}
}

// PUT /bank-accounts/:id (admin)
func UpdateBankAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var account models.BankAccount
		if err := db.First(&account, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}

		var input BankAccountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		account.BankEName = input.BankEName
		account.BankARName = input.BankARName
		account.AccountName = input.AccountName
		account.AccountNumber = input.AccountNumber
		account.IBAN = input.IBAN
		if input.Active != nil {
			account.Active = *input.Active
		}

		if err := db.Save(&account).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bank account"})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

// DELETE /bank-accounts/:id (admin)
func DeleteBankAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.BankAccount{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bank account"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bank account deleted"})
	}
}
