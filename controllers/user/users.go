package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

// GET /user/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

type updateProfileInput struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Locale     *string `json:"locale"`
	Country    *string `json:"country"`
	State      *string `json:"state"`
	City       *string `json:"city"`
	Street     *string `json:"street"`
	PostalCode *string `json:"postal_code"`
	Password   *string `json:"password"`
}

func applyProfileUpdate(user *models.User, input updateProfileInput) error {
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Locale != nil {
		if *input.Locale != "en" && *input.Locale != "ar" {
			return errInvalidLocale
		}
		user.Locale = *input.Locale
	}
	if input.Country != nil {
		user.Address.Country = *input.Country
	}
	if input.State != nil {
		user.Address.State = *input.State
	}
	if input.City != nil {
		user.Address.City = *input.City
	}
	if input.Street != nil {
		user.Address.Street = *input.Street
	}
	if input.PostalCode != nil {
		user.Address.PostalCode = *input.PostalCode
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return errShortPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}
	return nil
}

type validationError string

func (e validationError) Error() string { return string(e) }

const (
	errInvalidLocale validationError = "locale must be 'en' or 'ar'"
	errShortPassword validationError = "password must be at least 6 characters"
)

// PUT /user/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input updateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if err := applyProfileUpdate(&user, input); err != nil {
			if _, ok := err.(validationError); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /users (admin) — optional ?search= matches name or email.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.User{}).Order("created_at DESC")

		if search := c.Query("search"); search != "" {
			pattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
		}
		if role := c.Query("role"); role != "" {
			query = query.Where("role = ?", role)
		}

		var users []models.User
		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// POST /users (admin) — create an account, e.g. for phone orders.
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=6"`
			Name     string `json:"name"`
			Phone    string `json:"phone"`
			Role     string `json:"role"`
			Locale   string `json:"locale"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and a password of at least 6 characters are required"})
			return
		}

		role := input.Role
		if role == "" {
			role = "user"
		}
		if role != "user" && role != "admin" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be 'user' or 'admin'"})
			return
		}
		locale := input.Locale
		if locale == "" {
			locale = "ar"
		}
		if locale != "en" && locale != "ar" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLocale.Error()})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Email:    input.Email,
			Password: string(hashed),
			Name:     input.Name,
			Phone:    input.Phone,
			Role:     role,
			Locale:   locale,
			Cart:     models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// GET /users/:id (admin)
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.Preload("Cart.Items").First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /users/:id/orders (admin)
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		err := db.Preload("Items").
			Where("user_id = ?", c.Param("id")).
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /users/:id/loyalty (admin) — manual points adjustment.
func AdjustLoyaltyPoints(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Delta  float64 `json:"delta" binding:"required"`
			Reason string  `json:"reason"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		newBalance := user.LoyaltyPoints + input.Delta
		if newBalance < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Adjustment would make loyalty balance negative"})
			return
		}

		if err := db.Model(&user).Update("loyalty_points", newBalance).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust loyalty points"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"loyalty_points": newBalance})
	}
}

// PUT /users/:id/role (admin)
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Role string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
			return
		}
		if input.Role != "user" && input.Role != "admin" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be 'user' or 'admin'"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if err := db.Model(&user).Update("role", input.Role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /users/:id (admin)
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == c.GetString("user_id") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
