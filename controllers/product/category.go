package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ename := c.PostForm("ename")
		arname := c.PostForm("arname")

		if ename == "" || arname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ename and arname are required"})
			return
		}

		category := models.Category{
			EName:       ename,
			ARName:      arname,
			Description: c.PostForm("description"),
		}

		if parentStr := c.PostForm("parent_id"); parentStr != "" {
			parentID64, err := strconv.ParseUint(parentStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent_id"})
				return
			}
			parentID := uint(parentID64)
			var parent models.Category
			if err := db.First(&parent, parentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
				return
			}
			category.ParentID = &parentID
		}

		if imageURL, err := saveUpload(c, "image", "categories"); err == nil {
			category.Image = imageURL
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetCategories returns the catalog hierarchy as a forest of root
// categories with nested children. With ?flat=true it returns the flat
// list instead (used for parent dropdowns).
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("id").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		// Per-category product counts from the join table
		type catCount struct {
			CategoryID uint
			Count      int64
		}
		var counts []catCount
		if err := db.Table("product_categories").
			Select("category_id, COUNT(product_id) AS count").
			Group("category_id").
			Scan(&counts).Error; err == nil {
			countByID := make(map[uint]int64, len(counts))
			for _, cc := range counts {
				countByID[cc.CategoryID] = cc.Count
			}
			for i := range categories {
				categories[i].ProductCount = countByID[categories[i].ID]
			}
		}

		if c.Query("flat") == "true" {
			c.JSON(http.StatusOK, categories)
			return
		}

		c.JSON(http.StatusOK, models.BuildCategoryTree(categories))
	}
}

func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var children []models.Category
		if err := db.Where("parent_id = ?", category.ID).Order("id").Find(&children).Error; err == nil {
			category.Children = children
		}

		c.JSON(http.StatusOK, category)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if v := c.PostForm("ename"); v != "" {
			category.EName = v
		}
		if v := c.PostForm("arname"); v != "" {
			category.ARName = v
		}
		if v := c.PostForm("description"); v != "" {
			category.Description = v
		}

		// Parent reassignment. A category may never become a child of
		// itself or of one of its descendants.
		if parentStr, ok := c.GetPostForm("parent_id"); ok {
			if parentStr == "" {
				category.ParentID = nil
			} else {
				parentID64, err := strconv.ParseUint(parentStr, 10, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent_id"})
					return
				}
				parentID := uint(parentID64)

				var all []models.Category
				if err := db.Find(&all).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
				if models.DescendantIDs(category.ID, all)[parentID] {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category cannot become a child of itself or its descendants"})
					return
				}

				var parent models.Category
				if err := db.First(&parent, parentID).Error; err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
					return
				}
				category.ParentID = &parentID
			}
		}

		if imageURL, err := saveUpload(c, "image", "categories"); err == nil {
			// Delete old image if exists
			if category.Image != "" {
				oldPath := filepath.Join(uploadDir("categories"), filepath.Base(category.Image))
				_ = os.Remove(oldPath)
			}
			category.Image = imageURL
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory refuses to delete a category that still has
// subcategories or products.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var cat models.Category
		if err := db.First(&cat, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var childCount int64
		if err := db.Model(&models.Category{}).Where("parent_id = ?", cat.ID).Count(&childCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subcategories"})
			return
		}
		productCount := db.Model(&cat).Association("Products").Count()

		if childCount > 0 || productCount > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Category cannot be deleted, it may contain subcategories or products"})
			return
		}

		// Delete image file
		if cat.Image != "" {
			imagePath := filepath.Join(uploadDir("categories"), filepath.Base(cat.Image))
			_ = os.Remove(imagePath)
		}

		if err := db.Delete(&cat).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
