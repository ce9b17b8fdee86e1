package reportControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/models"
)

type topProductRow struct {
	ProductID     uint    `json:"product_id"`
	ProductEName  string  `json:"product_ename"`
	ProductArName string  `json:"product_arname"`
	UnitsSold     int64   `json:"units_sold"`
	Revenue       float64 `json:"revenue"`
}

type topCustomerRow struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	OrderCount int64   `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

type profitLossRow struct {
	Revenue      float64 `json:"revenue"`
	CostOfGoods  float64 `json:"cost_of_goods"`
	DeliveryFees float64 `json:"delivery_fees"`
	Discounts    float64 `json:"discounts"`
	GrossProfit  float64 `json:"gross_profit"`
	OrderCount   int64   `json:"order_count"`
}

// parsePeriod reads optional from/to query params (YYYY-MM-DD) and
// defaults to the last 30 days.
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, false
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, false
		}
		// inclusive end of day
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, true
}

// GET /reports/top-products (admin)
func TopProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parsePeriod(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from/to date, use YYYY-MM-DD"})
			return
		}

		var rows []topProductRow
		err := db.Table("order_items").
			Select(`order_items.product_id,
				order_items.product_e_name AS product_e_name,
				order_items.product_ar_name AS product_ar_name,
				SUM(order_items.quantity) AS units_sold,
				SUM(order_items.product_sale_price * order_items.quantity) AS revenue`).
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.payment_status = ? AND orders.created_at BETWEEN ? AND ?", models.PaymentStatusPaid, from, to).
			Group("order_items.product_id, order_items.product_e_name, order_items.product_ar_name").
			Order("units_sold DESC").
			Limit(20).
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build top products report"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /reports/top-customers (admin)
func TopCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parsePeriod(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from/to date, use YYYY-MM-DD"})
			return
		}

		var rows []topCustomerRow
		err := db.Table("orders").
			Select(`orders.user_id,
				users.name,
				users.email,
				COUNT(orders.id) AS order_count,
				SUM(orders.total_amount) AS total_spent`).
			Joins("JOIN users ON users.id = orders.user_id").
			Where("orders.payment_status = ? AND orders.created_at BETWEEN ? AND ?", models.PaymentStatusPaid, from, to).
			Group("orders.user_id, users.name, users.email").
			Order("total_spent DESC").
			Limit(20).
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build top customers report"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func profitLoss(db *gorm.DB, from, to time.Time) (profitLossRow, error) {
	var row profitLossRow

	err := db.Table("orders").
		Select(`COALESCE(SUM(orders.subtotal), 0) AS revenue,
			COALESCE(SUM(orders.delivery_fee), 0) AS delivery_fees,
			COALESCE(SUM(orders.coupon_discount + orders.loyalty_discount), 0) AS discounts,
			COUNT(orders.id) AS order_count`).
		Where("orders.payment_status = ? AND orders.created_at BETWEEN ? AND ?", models.PaymentStatusPaid, from, to).
		Scan(&row).Error
	if err != nil {
		return row, err
	}

	err = db.Table("order_items").
		Select("COALESCE(SUM(order_items.product_base_cost * order_items.quantity), 0)").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.payment_status = ? AND orders.created_at BETWEEN ? AND ?", models.PaymentStatusPaid, from, to).
		Scan(&row.CostOfGoods).Error
	if err != nil {
		return row, err
	}

	row.GrossProfit = row.Revenue - row.CostOfGoods - row.Discounts
	return row, nil
}

// GET /reports/profit-loss (admin)
func ProfitLoss(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parsePeriod(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from/to date, use YYYY-MM-DD"})
			return
		}

		row, err := profitLoss(db, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build profit/loss report"})
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// GET /reports/profit-loss/export (admin) — xlsx download.
func ExportProfitLoss(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parsePeriod(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from/to date, use YYYY-MM-DD"})
			return
		}

		row, err := profitLoss(db, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build profit/loss report"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("ProfitLoss")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"From", "To", "Revenue", "CostOfGoods", "DeliveryFees", "Discounts", "GrossProfit", "OrderCount"} {
			headerRow.AddCell().SetValue(h)
		}
		dataRow := sheet.AddRow()
		dataRow.AddCell().SetValue(from.Format("2006-01-02"))
		dataRow.AddCell().SetValue(to.Format("2006-01-02"))
		dataRow.AddCell().SetValue(row.Revenue)
		dataRow.AddCell().SetValue(row.CostOfGoods)
		dataRow.AddCell().SetValue(row.DeliveryFees)
		dataRow.AddCell().SetValue(row.Discounts)
		dataRow.AddCell().SetValue(row.GrossProfit)
		dataRow.AddCell().SetValue(row.OrderCount)

		c.Header("Content-Disposition", "attachment; filename=profit-loss.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// GET /reports/product/:id (admin) — sales history for one product.
func ProductReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		from, to, ok := parsePeriod(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from/to date, use YYYY-MM-DD"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		type monthlyRow struct {
			Month     string  `json:"month"`
			UnitsSold int64   `json:"units_sold"`
			Revenue   float64 `json:"revenue"`
			Cost      float64 `json:"cost"`
		}
		var rows []monthlyRow
		err := db.Table("order_items").
			Select(`to_char(orders.created_at, 'YYYY-MM') AS month,
				SUM(order_items.quantity) AS units_sold,
				SUM(order_items.product_sale_price * order_items.quantity) AS revenue,
				SUM(order_items.product_base_cost * order_items.quantity) AS cost`).
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("order_items.product_id = ? AND orders.payment_status = ? AND orders.created_at BETWEEN ? AND ?",
				productID, models.PaymentStatusPaid, from, to).
			Group("month").
			Order("month").
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build product report"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product": product,
			"monthly": rows,
		})
	}
}
