package recipeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

type RecipeIngredientInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type RecipeInput struct {
	EName         string                  `json:"ename" binding:"required"`
	ARName        string                  `json:"arname"`
	EDescription  string                  `json:"edescription"`
	ARDescription string                  `json:"ardescription"`
	Image         string                  `json:"image"`
	Ingredients   []RecipeIngredientInput `json:"ingredients" binding:"required,min=1,dive"`
}

func buildIngredients(db *gorm.DB, inputs []RecipeIngredientInput) ([]models.RecipeIngredient, error) {
	var ingredients []models.RecipeIngredient
	for _, in := range inputs {
		var product models.Product
		if err := db.First(&product, in.ProductID).Error; err != nil {
			return nil, err
		}
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		ingredients = append(ingredients, models.RecipeIngredient{
			ProductID: in.ProductID,
			Quantity:  qty,
		})
	}
	return ingredients, nil
}

// GET /recipes
func GetAllRecipes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var recipes []models.Recipe
		if err := db.Preload("Ingredients.Product").Order("created_at DESC").Find(&recipes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
			return
		}
		c.JSON(http.StatusOK, recipes)
	}
}

// GET /recipes/:id
func GetRecipeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var recipe models.Recipe
		if err := db.Preload("Ingredients.Product").First(&recipe, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusOK, recipe)
	}
}

// POST /recipes (admin)
func CreateRecipe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RecipeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ingredients, err := buildIngredients(db, input.Ingredients)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient product does not exist"})
			return
		}

		recipe := models.Recipe{
			EName:         input.EName,
			ARName:        input.ARName,
			EDescription:  input.EDescription,
			ARDescription: input.ARDescription,
			Image:         input.Image,
			Ingredients:   ingredients,
		}

		if err := db.Create(&recipe).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
			return
		}
		c.JSON(http.StatusCreated, recipe)
	}
}

// PUT /recipes/:id (admin)
func UpdateRecipe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var recipe models.Recipe
		if err := db.Preload("Ingredients").First(&recipe, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}

		var input RecipeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ingredients, err := buildIngredients(db, input.Ingredients)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient product does not exist"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}

			recipe.EName = input.EName
			recipe.ARName = input.ARName
			recipe.EDescription = input.EDescription
			recipe.ARDescription = input.ARDescription
			recipe.Image = input.Image
			recipe.Ingredients = ingredients

			return tx.Save(&recipe).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
			return
		}
		c.JSON(http.StatusOK, recipe)
	}
}

// DELETE /recipes/:id (admin)
func DeleteRecipe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
	}
}

// GET /products/:id/recipes — recipes using the given product.
func GetRecipesByProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var recipes []models.Recipe
		if err := db.
			Joins("JOIN recipe_ingredients ri ON ri.recipe_id = recipes.id").
			Where("ri.product_id = ?", productID).
			Preload("Ingredients.Product").
			Find(&recipes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
			return
		}
		c.JSON(http.StatusOK, recipes)
	}
}

// GET /recipes/:id/check — whether every ingredient is in stock.
func CheckRecipeAvailability(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var recipe models.Recipe
		if err := db.Preload("Ingredients").First(&recipe, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}

		var productIDs []uint
		for _, ing := range recipe.Ingredients {
			productIDs = append(productIDs, ing.ProductID)
		}

		stockByProduct := make(map[uint]int)
		if len(productIDs) > 0 {
			var products []models.Product
			if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredient stock"})
				return
			}
			for _, p := range products {
				stockByProduct[p.ID] = p.Stock
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"recipe_id": recipe.ID,
			"available": models.RecipeAvailable(recipe.Ingredients, stockByProduct),
		})
	}
}

// GET /products-with-recipes — distinct products referenced by
// at least one recipe.
func GetProductsWithRecipes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Distinct("products.*").
			Joins("JOIN recipe_ingredients ri ON ri.product_id = products.id").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
