package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/mayanshop/mayan-api/controllers/cart"
	loyaltyShopControllers "github.com/mayanshop/mayan-api/controllers/loyaltyshop"
	messageControllers "github.com/mayanshop/mayan-api/controllers/message"
	orderControllers "github.com/mayanshop/mayan-api/controllers/order"
	userControllers "github.com/mayanshop/mayan-api/controllers/user"
	"github.com/mayanshop/mayan-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(db))    // GET /user/profile
		userGroup.PUT("/profile", userControllers.UpdateProfile(db)) // PUT /user/profile

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))              // POST /user/cart
			cartGroup.GET("/quote", cartControllers.GetCartQuote(db))            // GET /user/cart/quote?coupon=&use_loyalty=
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Messages ────────────────
		messageGroup := userGroup.Group("/messages")
		{
			messageGroup.GET("/", messageControllers.GetMessages(db))            // GET /user/messages?type=inbox|sent
			messageGroup.POST("/", messageControllers.CreateMessage(db))         // POST /user/messages
			messageGroup.PUT("/:id/read", messageControllers.MarkMessageRead(db)) // PUT /user/messages/:id/read
			messageGroup.DELETE("/:id", messageControllers.DeleteMessage(db))    // DELETE /user/messages/:id
		}

		// ──────────────── Order history ────────────────
		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(db)) // GET /user/orders

		// ──────────────── Loyalty shop ────────────────
		userGroup.POST("/loyalty/redeem", loyaltyShopControllers.RedeemLoyaltyProduct(db)) // POST /user/loyalty/redeem
		userGroup.GET("/loyalty/redemptions", loyaltyShopControllers.GetUserRedemptions(db))
	}
}
