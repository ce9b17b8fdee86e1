package procurementControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mayanshop/mayan-api/models"
)

type ProcurementItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitCost  float64 `json:"unit_cost" binding:"required"`
}

type ProcurementInput struct {
	Supplier  string                 `json:"supplier" binding:"required"`
	Reference string                 `json:"reference"`
	Items     []ProcurementItemInput `json:"items" binding:"required,min=1,dive"`
}

// averageCost blends existing stock valued at the old base cost with
// the incoming units at their purchase cost.
func averageCost(oldStock int, oldCost float64, addQty int, addCost float64) float64 {
	totalQty := oldStock + addQty
	if totalQty <= 0 {
		return addCost
	}
	return (float64(oldStock)*oldCost + float64(addQty)*addCost) / float64(totalQty)
}

// POST /procurement (admin)
func CreateProcurementOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProcurementInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var items []models.ProcurementItem
		var totalCost float64
		for _, it := range input.Items {
			var product models.Product
			if err := db.First(&product, it.ProductID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			items = append(items, models.ProcurementItem{
				ProductID:    it.ProductID,
				ProductEName: product.EName,
				Quantity:     it.Quantity,
				UnitCost:     it.UnitCost,
			})
			totalCost += float64(it.Quantity) * it.UnitCost
		}

		order := models.ProcurementOrder{
			Supplier:  input.Supplier,
			Reference: input.Reference,
			Status:    models.ProcurementStatusOrdered,
			Items:     items,
			TotalCost: totalCost,
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create procurement order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /procurement (admin)
func GetProcurementOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var orders []models.ProcurementOrder
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch procurement orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /procurement/:id (admin)
func GetProcurementOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.ProcurementOrder
		if err := db.Preload("Items").First(&order, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Procurement order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /procurement/:id (admin)
// Receiving an order applies it exactly once: each product gains the
// purchased quantity and its base cost becomes the weighted average of
// old stock and the new batch.
func ReceiveProcurementOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.ProcurementOrder
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Preload("Items").First(&order, id).Error; err != nil {
				return err
			}

			if order.Status == models.ProcurementStatusReceived {
				return errors.New("procurement order is already received")
			}

			for _, item := range order.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, item.ProductID).Error; err != nil {
					return err
				}

				product.BaseCost = averageCost(product.Stock, product.BaseCost, item.Quantity, item.UnitCost)
				product.Stock += item.Quantity

				if err := tx.Save(&product).Error; err != nil {
					return err
				}
			}

			now := time.Now()
			return tx.Model(&order).Updates(map[string]interface{}{
				"status":      models.ProcurementStatusReceived,
				"received_at": &now,
			}).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Procurement order not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Procurement order received, stock updated"})
	}
}
