package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bankAccountControllers "github.com/mayanshop/mayan-api/controllers/bankaccount"
	cartControllers "github.com/mayanshop/mayan-api/controllers/cart"
	couponControllers "github.com/mayanshop/mayan-api/controllers/coupon"
	deliveryZoneControllers "github.com/mayanshop/mayan-api/controllers/deliveryzone"
	loyaltyShopControllers "github.com/mayanshop/mayan-api/controllers/loyaltyshop"
	procurementControllers "github.com/mayanshop/mayan-api/controllers/procurement"
	productcontroller "github.com/mayanshop/mayan-api/controllers/product"
	recipeControllers "github.com/mayanshop/mayan-api/controllers/recipe"
	reportControllers "github.com/mayanshop/mayan-api/controllers/report"
	settingsControllers "github.com/mayanshop/mayan-api/controllers/settings"
	supportControllers "github.com/mayanshop/mayan-api/controllers/support"
	userControllers "github.com/mayanshop/mayan-api/controllers/user"
	"github.com/mayanshop/mayan-api/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires a JWT with
// the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ──────────────── Products ────────────────
		productGroup := adminGroup.Group("/products")
		{
			productGroup.POST("/", productcontroller.CreateProduct(db))             // POST /admin/products
			productGroup.PUT("/:id", productcontroller.UpdateProduct(db))           // PUT /admin/products/:id
			productGroup.DELETE("/:id", productcontroller.DeleteProduct(db))        // DELETE /admin/products/:id
			productGroup.POST("/import", productcontroller.ImportProductsFromExcel(db)) // POST /admin/products/import
			productGroup.GET("/export", productcontroller.ExportProductsToExcel(db))    // GET /admin/products/export
		}

		// ──────────────── Categories ────────────────
		categoryGroup := adminGroup.Group("/categories")
		{
			categoryGroup.POST("/", productcontroller.CreateCategory(db))      // POST /admin/categories
			categoryGroup.PUT("/:id", productcontroller.UpdateCategory(db))    // PUT /admin/categories/:id
			categoryGroup.DELETE("/:id", productcontroller.DeleteCategory(db)) // DELETE /admin/categories/:id
		}

		// ──────────────── Coupons ────────────────
		couponGroup := adminGroup.Group("/coupons")
		{
			couponGroup.GET("/", couponControllers.GetAllCoupons(db))
			couponGroup.POST("/", couponControllers.CreateCoupon(db))
			couponGroup.PUT("/:id", couponControllers.UpdateCoupon(db))
			couponGroup.DELETE("/:id", couponControllers.DeleteCoupon(db))
		}

		// ──────────────── Bank accounts ────────────────
		bankGroup := adminGroup.Group("/bank-accounts")
		{
			bankGroup.GET("/", bankAccountControllers.GetBankAccounts(db))
			bankGroup.POST("/", bankAccountControllers.CreateBankAccount(db))
			bankGroup.PUT("/:id", bankAccountControllers.UpdateBankAccount(db))
			bankGroup.DELETE("/:id", bankAccountControllers.DeleteBankAccount(db))
		}

		// ──────────────── Users ────────────────
		usersGroup := adminGroup.Group("/users")
		{
			usersGroup.GET("/", userControllers.GetAllUsers(db))                 // GET /admin/users?search=&role=
			usersGroup.POST("/", userControllers.CreateUser(db))                 // POST /admin/users
			usersGroup.GET("/:id", userControllers.GetUserByID(db))              // GET /admin/users/:id
			usersGroup.GET("/:id/orders", userControllers.GetUserOrders(db))     // GET /admin/users/:id/orders
			usersGroup.GET("/:id/cart", cartControllers.GetAdminUserCart(db))    // GET /admin/users/:id/cart
			usersGroup.PUT("/:id/loyalty", userControllers.AdjustLoyaltyPoints(db)) // PUT /admin/users/:id/loyalty
			usersGroup.PUT("/:id/role", userControllers.UpdateUserRole(db))      // PUT /admin/users/:id/role
			usersGroup.DELETE("/:id", userControllers.DeleteUser(db))            // DELETE /admin/users/:id
		}

		// ──────────────── Reports ────────────────
		reportGroup := adminGroup.Group("/reports")
		{
			reportGroup.GET("/top-products", reportControllers.TopProducts(db))
			reportGroup.GET("/top-customers", reportControllers.TopCustomers(db))
			reportGroup.GET("/profit-loss", reportControllers.ProfitLoss(db))
			reportGroup.GET("/profit-loss/export", reportControllers.ExportProfitLoss(db))
			reportGroup.GET("/product/:id", reportControllers.ProductReport(db))
		}

		// ──────────────── Procurement ────────────────
		procurementGroup := adminGroup.Group("/procurement")
		{
			procurementGroup.GET("/", procurementControllers.GetProcurementOrders(db))
			procurementGroup.POST("/", procurementControllers.CreateProcurementOrder(db))
			procurementGroup.GET("/:id", procurementControllers.GetProcurementOrderByID(db))
			procurementGroup.PUT("/:id/receive", procurementControllers.ReceiveProcurementOrder(db))
		}

		// ──────────────── Recipes ────────────────
		recipeGroup := adminGroup.Group("/recipes")
		{
			recipeGroup.POST("/", recipeControllers.CreateRecipe(db))
			recipeGroup.PUT("/:id", recipeControllers.UpdateRecipe(db))
			recipeGroup.DELETE("/:id", recipeControllers.DeleteRecipe(db))
		}

		// ──────────────── Loyalty shop ────────────────
		loyaltyGroup := adminGroup.Group("/loyalty")
		{
			loyaltyGroup.PUT("/settings", loyaltyShopControllers.UpdateLoyaltySettings(db))
			loyaltyGroup.POST("/products", loyaltyShopControllers.CreateLoyaltyProduct(db))
			loyaltyGroup.PUT("/products/:id", loyaltyShopControllers.UpdateLoyaltyProduct(db))
			loyaltyGroup.DELETE("/products/:id", loyaltyShopControllers.DeleteLoyaltyProduct(db))
			loyaltyGroup.GET("/redemptions", loyaltyShopControllers.GetAllRedemptions(db)) // ?status=
			loyaltyGroup.PUT("/redemptions/:id/status", loyaltyShopControllers.UpdateRedemptionStatus(db))
		}

		// ──────────────── Delivery zones ────────────────
		zoneGroup := adminGroup.Group("/delivery-zones")
		{
			zoneGroup.POST("/", deliveryZoneControllers.CreateDeliveryZone(db))
			zoneGroup.PUT("/:id", deliveryZoneControllers.UpdateDeliveryZone(db))
			zoneGroup.DELETE("/:id", deliveryZoneControllers.DeleteDeliveryZone(db))
		}

		// ──────────────── Settings ────────────────
		adminGroup.PUT("/settings", settingsControllers.UpdateSettings(db))          // PUT /admin/settings
		adminGroup.POST("/settings/banner", settingsControllers.UploadBanner(db))    // POST /admin/settings/banner

		// ──────────────── Support ────────────────
		adminGroup.GET("/support", supportControllers.GetSupportTickets(db))              // GET /admin/support?resolved=
		adminGroup.PUT("/support/:id/resolve", supportControllers.ResolveSupportTicket(db)) // PUT /admin/support/:id/resolve
	}
}
