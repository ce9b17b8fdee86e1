package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/mayanshop/mayan-api/controllers/order"
	"github.com/mayanshop/mayan-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// websocket endpoint for real-time order updates (admin dashboard feed)
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order from the user's cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Fetch one order by id or order_ref (owner or admin)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Bank-transfer screenshot upload
		orders.PUT("/:orderID/payment-proof", orderControllers.UploadPaymentProofHandler(db))
	}

	adminOrders := r.Group("/orders")
	adminOrders.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// Fetch all orders, optionally filtered by ?status=
		adminOrders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// Update order status (e.g., shipped, cancelled)
		adminOrders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// Update payment status (e.g., paid, rejected)
		adminOrders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

		// Delete an order
		adminOrders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
