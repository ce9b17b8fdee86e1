package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mayanshop/mayan-api/models"
	"github.com/mayanshop/mayan-api/pricing"
)

// -------- Request Structs --------
type PlaceOrderRequest struct {
	CouponCode    string `json:"coupon_code"`
	UseLoyalty    bool   `json:"use_loyalty"`
	BankAccountID *uint  `json:"bank_account_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusUnderReview):
		return models.PaymentStatusUnderReview, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusRejected):
		return models.PaymentStatusRejected, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder checks out the user's cart: validates the coupon, quotes
// the totals, locks and deducts stock, burns loyalty points, records
// earned points and clears the cart. Everything runs in one
// transaction, so a failed checkout leaves cart and balances untouched.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	var user models.User
	if err := db.Preload("Cart.Items").First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	cart := user.Cart
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	var settings models.SiteSettings
	deliveryFee := float64(models.DefaultDeliveryFee)
	if err := db.First(&settings).Error; err == nil && settings.DeliveryFee > 0 {
		deliveryFee = settings.DeliveryFee
	}

	subtotal := pricing.Subtotal(cart.Items)

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock the user row so a concurrent checkout or loyalty-shop
		// redemption cannot spend the same points twice. The quote is
		// computed from the balance read under this lock.
		var lockedUser models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&lockedUser, "id = ?", userID).Error; err != nil {
			return err
		}

		var coupon *models.Coupon
		var couponDiscount float64
		if req.CouponCode != "" {
			found, err := validateCoupon(tx, req.CouponCode, subtotal)
			if err != nil {
				return err
			}
			coupon = found
			couponDiscount = pricing.CouponDiscount(*coupon, subtotal)
		}

		quote := pricing.Compute(cart.Items, deliveryFee, couponDiscount, req.UseLoyalty, lockedUser.LoyaltyPoints)

		var orderItems []models.OrderItem
		rateByProduct := make(map[uint]float64)

		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductEName)
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			rateByProduct[product.ID] = product.LoyaltyRate

			orderItems = append(orderItems, models.OrderItem{
				ProductID:           item.ProductID,
				ProductEName:        item.ProductEName,
				ProductArName:       item.ProductArName,
				ProductImage:        item.ProductImage,
				ProductSalePrice:    item.ProductSalePrice,
				ProductRegularPrice: item.ProductRegularPrice,
				ProductBaseCost:     product.BaseCost,
				Quantity:            item.Quantity,
			})
		}

		// Burn loyalty points used as discount
		if quote.LoyaltyDiscount > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("loyalty_points", gorm.Expr("loyalty_points - ?", quote.LoyaltyDiscount)).Error; err != nil {
				return err
			}
		}

		// Record coupon usage
		if coupon != nil {
			if err := tx.Model(coupon).
				Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
		}

		couponCode := ""
		if coupon != nil {
			couponCode = coupon.Code
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			Items:           orderItems,
			Subtotal:        quote.Subtotal,
			DeliveryFee:     quote.DeliveryFee,
			CouponCode:      couponCode,
			CouponDiscount:  quote.CouponDiscount,
			LoyaltyDiscount: quote.LoyaltyDiscount,
			LoyaltyEarned:   pricing.LoyaltyEarned(orderItems, rateByProduct),
			TotalAmount:     quote.GrandTotal,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   "bank_transfer",
			BankAccountID:   req.BankAccountID,
			CreatedAt:       time.Now(),
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := PlaceOrder(db, userIDVal.(string), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders?status=
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders — orders of the authenticated user.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — numeric id or order_ref. Owners see their own
// orders, admins see any.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if order.UserID != c.GetString("user_id") && c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PUT /orders/:orderID/payment-status
// Marking an order paid credits the loyalty points it earned.
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&order, "id = ?", orderID).Error; err != nil {
				return err
			}

			wasPaid := order.PaymentStatus == models.PaymentStatusPaid
			if err := tx.Model(&order).Update("payment_status", newStatus).Error; err != nil {
				return err
			}

			// Credit earned points exactly once, on the transition to paid
			if newStatus == models.PaymentStatusPaid && !wasPaid && order.LoyaltyEarned > 0 {
				if err := tx.Model(&models.User{}).Where("id = ?", order.UserID).
					Update("loyalty_points", gorm.Expr("loyalty_points + ?", order.LoyaltyEarned)).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// restocksOnDelete reports whether deleting an order in the given
// status should return its items to stock. Delivered goods are with
// the customer, so their deduction stands.
func restocksOnDelete(status models.OrderStatus) bool {
	return status != models.OrderStatusDelivered
}

// DELETE /orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
				return err
			}

			// Put the reserved stock back unless the goods already
			// left with the customer.
			if restocksOnDelete(order.Status) {
				for _, item := range order.Items {
					if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
						Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
						return err
					}
				}
			}

			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", orderID).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// validateCoupon fetches the coupon under a row lock and enforces the
// same checks as the /coupons/validate endpoint. Called inside the
// checkout transaction, so the usage count it sees stays valid until
// used_count is incremented.
func validateCoupon(tx *gorm.DB, code string, subtotal float64) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, errors.New("coupon not found")
	}
	if err := checkCouponUsable(coupon, subtotal, time.Now()); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// checkCouponUsable enforces activity, expiry, usage count and minimum
// purchase.
func checkCouponUsable(coupon models.Coupon, subtotal float64, now time.Time) error {
	if !coupon.Active {
		return errors.New("coupon is not active")
	}
	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(now) {
		return errors.New("coupon expired")
	}
	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return errors.New("coupon usage limit reached")
	}
	if subtotal < coupon.MinPurchase {
		return errors.New("subtotal below coupon minimum purchase")
	}
	return nil
}
