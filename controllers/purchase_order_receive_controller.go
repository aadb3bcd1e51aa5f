package controllers

import (
	"fmt"
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReceiveItemRequest records goods received against one order line
type ReceiveItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// ReceivePurchaseOrderRequest represents a goods receipt
type ReceivePurchaseOrderRequest struct {
	Items []ReceiveItemRequest `json:"items" binding:"required"`
}

// ReceivePurchaseOrder records received quantities against an order's
// items. Quantities accumulate across receipts and are clamped to the
// ordered quantity; product stock is increased by what was accepted.
// The order status is derived from the resulting totals.
func ReceivePurchaseOrder(c *gin.Context) {
	utils.LogInfo("ReceivePurchaseOrder called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	switch order.Status {
	case models.PurchaseOrderStatusPending, models.PurchaseOrderStatusPartiallyReceived:
		// receivable
	default:
		utils.LogError("Purchase order %s cannot receive goods in status %s", order.OrderNumber, order.Status)
		utils.Conflict(c, "Order must be pending or partially received to receive goods", nil)
		return
	}

	var req ReceivePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for order %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var fieldErrs utils.FieldValidationErrors
	for i, item := range req.Items {
		if err := utils.ValidateQuantity(item.Quantity); err != nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: err.Error(),
			})
		}
	}
	if len(fieldErrs) > 0 {
		utils.ValidationError(c, "Validation failed", fieldErrs)
		return
	}

	itemsByID := make(map[uint]*models.PurchaseOrderItem, len(order.Items))
	for i := range order.Items {
		itemsByID[order.Items[i].ID] = &order.Items[i]
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	for _, receipt := range req.Items {
		item, ok := itemsByID[receipt.ItemID]
		if !ok {
			tx.Rollback()
			utils.LogError("Item %d does not belong to order %s", receipt.ItemID, order.OrderNumber)
			utils.BadRequest(c, "Item does not belong to this order", nil)
			return
		}

		accepted := receipt.Quantity
		if item.ReceivedQuantity+accepted > item.Quantity {
			accepted = item.Quantity - item.ReceivedQuantity
		}
		if accepted <= 0 {
			continue
		}
		item.ReceivedQuantity += accepted

		if err := tx.Model(&models.PurchaseOrderItem{}).
			Where("id = ?", item.ID).
			Update("received_quantity", item.ReceivedQuantity).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to update received quantity for item %d: %v", item.ID, err)
			utils.InternalServerError(c, "Failed to record receipt", nil)
			return
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			Update("stock", gorm.Expr("stock + ?", accepted)).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to update stock for product %d: %v", item.ProductID, err)
			utils.InternalServerError(c, "Failed to update stock", nil)
			return
		}
	}

	newStatus := order.DeriveReceivingStatus()
	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now(),
	}
	if newStatus == models.PurchaseOrderStatusReceived {
		now := time.Now().UTC()
		updates["received_date"] = &now
	}
	if err := tx.Model(&order).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update order status for %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Failed to update order status", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	if err := config.DB.Preload("Supplier").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		utils.LogError("Failed to reload purchase order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to load updated order", nil)
		return
	}

	utils.LogInfo("Recorded goods receipt for purchase order %s, status now %s", order.OrderNumber, order.Status)
	utils.Success(c, "Goods receipt recorded successfully", gin.H{
		"order": formatPurchaseOrderDetails(&order),
	})
}
