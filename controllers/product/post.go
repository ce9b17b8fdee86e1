package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

func uploadDir(sub string) string {
	base := os.Getenv("UPLOAD_DIR")
	if base == "" {
		base = "./uploads"
	}
	return filepath.Join(base, sub)
}

// saveUpload stores a multipart file under the given subdirectory and
// returns its public URL.
func saveUpload(c *gin.Context, field, sub string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	dir := uploadDir(sub)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/%s/%s", sub, filename), nil
}

// CreateProduct creates a new product with multiple categories + image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		ename := c.PostForm("ename")
		salePriceStr := c.PostForm("sale_price")
		if ename == "" || salePriceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ename and sale_price are required"})
			return
		}

		// Optional fields
		arname := c.PostForm("arname")
		edescription := c.PostForm("edescription")
		ardescription := c.PostForm("ardescription")
		regularPriceStr := c.PostForm("regular_price")
		baseCostStr := c.PostForm("base_cost")
		loyaltyRateStr := c.PostForm("loyalty_rate")
		stockStr := c.PostForm("stock")
		categoryIDsStr := c.PostForm("category_ids")

		salePrice, err := strconv.ParseFloat(salePriceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
			return
		}

		var regularPrice, baseCost, loyaltyRate float64
		var stock int
		if regularPriceStr != "" {
			if rp, parseErr := strconv.ParseFloat(regularPriceStr, 64); parseErr == nil {
				regularPrice = rp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid regular_price"})
				return
			}
		}
		if baseCostStr != "" {
			if bc, parseErr := strconv.ParseFloat(baseCostStr, 64); parseErr == nil {
				baseCost = bc
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_cost"})
				return
			}
		}
		if loyaltyRateStr != "" {
			if lr, parseErr := strconv.ParseFloat(loyaltyRateStr, 64); parseErr == nil {
				loyaltyRate = lr
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loyalty_rate"})
				return
			}
		}
		if stockStr != "" {
			if s, parseErr := strconv.Atoi(stockStr); parseErr == nil {
				stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// Categories
		var categories []models.Category
		if categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
					return
				}
			}
			if len(parsedIDs) > 0 {
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
			}
		}

		// Image upload
		imageURL, err := saveUpload(c, "image", "products")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		newProduct := models.Product{
			EName:         ename,
			ARName:        arname,
			EDescription:  edescription,
			ARDescription: ardescription,
			SalePrice:     salePrice,
			RegularPrice:  regularPrice,
			BaseCost:      baseCost,
			LoyaltyRate:   loyaltyRate,
			Stock:         stock,
			Image:         imageURL,
			Categories:    categories,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
