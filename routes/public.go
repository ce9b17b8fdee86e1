package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bankAccountControllers "github.com/mayanshop/mayan-api/controllers/bankaccount"
	couponControllers "github.com/mayanshop/mayan-api/controllers/coupon"
	deliveryZoneControllers "github.com/mayanshop/mayan-api/controllers/deliveryzone"
	loyaltyShopControllers "github.com/mayanshop/mayan-api/controllers/loyaltyshop"
	productcontroller "github.com/mayanshop/mayan-api/controllers/product"
	recipeControllers "github.com/mayanshop/mayan-api/controllers/recipe"
	settingsControllers "github.com/mayanshop/mayan-api/controllers/settings"
	supportControllers "github.com/mayanshop/mayan-api/controllers/support"
)

// SetupPublicRoutes registers the storefront endpoints that need no token.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(db))           // GET /products
	r.GET("/products/:id", productcontroller.GetProductByID(db))    // GET /products/:id
	r.GET("/categories", productcontroller.GetCategories(db))       // GET /categories (?flat=true)
	r.GET("/categories/:id", productcontroller.GetCategoryByID(db)) // GET /categories/:id

	// ──────────────── Delivery zones ────────────────
	r.GET("/delivery-zones", deliveryZoneControllers.GetDeliveryZones(db))       // GET /delivery-zones
	r.GET("/delivery-zones/price", deliveryZoneControllers.GetDeliveryPrice(db)) // GET /delivery-zones/price?country=&state=

	// ──────────────── Payment info ────────────────
	r.GET("/bank-accounts", bankAccountControllers.GetBankAccounts(db)) // GET /bank-accounts (active only)

	// ──────────────── Coupons ────────────────
	r.POST("/coupons/validate", couponControllers.ValidateCoupon(db)) // POST /coupons/validate

	// ──────────────── Loyalty shop ────────────────
	r.GET("/loyalty/settings", loyaltyShopControllers.GetLoyaltySettings(db)) // GET /loyalty/settings
	r.GET("/loyalty/products", loyaltyShopControllers.GetLoyaltyProducts(db)) // GET /loyalty/products

	// ──────────────── Recipes ────────────────
	r.GET("/recipes", recipeControllers.GetAllRecipes(db))                     // GET /recipes
	r.GET("/recipes/:id", recipeControllers.GetRecipeByID(db))                 // GET /recipes/:id
	r.GET("/recipes/:id/check", recipeControllers.CheckRecipeAvailability(db)) // GET /recipes/:id/check
	r.GET("/products/:id/recipes", recipeControllers.GetRecipesByProduct(db))  // GET /products/:id/recipes
	r.GET("/products-with-recipes", recipeControllers.GetProductsWithRecipes(db))

	// ──────────────── Storefront settings ────────────────
	r.GET("/settings", settingsControllers.GetSettings(db)) // GET /settings

	// ──────────────── Support ────────────────
	r.POST("/support", supportControllers.CreateSupportTicket(db)) // POST /support
}
