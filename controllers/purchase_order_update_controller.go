package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// UpdatePurchaseOrderRequest represents the request body for updating
// a purchase order
type UpdatePurchaseOrderRequest struct {
	SupplierID   *uint                      `json:"supplier_id"`
	ExpectedDate *string                    `json:"expected_date"`
	Notes        *string                    `json:"notes"`
	Items        []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrder updates a draft or pending purchase order. Items
// are replaced wholesale. Changing the supplier discards the existing
// items: order lines are supplier-scoped, so lines picked for one
// supplier are meaningless under another.
func UpdatePurchaseOrder(c *gin.Context) {
	utils.LogInfo("UpdatePurchaseOrder called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	if !order.Editable() {
		utils.LogError("Purchase order %s is not editable in status %s", order.OrderNumber, order.Status)
		utils.Conflict(c, "Only draft or pending orders can be edited", nil)
		return
	}

	var req UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for order %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	supplierChanged := req.SupplierID != nil && *req.SupplierID != order.SupplierID
	if len(req.Items) > 0 {
		if fieldErrs := validatePurchaseOrderItems(req.Items); len(fieldErrs) > 0 {
			utils.LogError("Purchase order %s validation failed: %v", id, fieldErrs)
			utils.ValidationError(c, "Validation failed", fieldErrs)
			return
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	supplierID := order.SupplierID
	if req.SupplierID != nil {
		var supplier models.Supplier
		if err := tx.First(&supplier, *req.SupplierID).Error; err != nil {
			tx.Rollback()
			utils.LogError("Supplier not found: %d", *req.SupplierID)
			utils.BadRequest(c, "Supplier not found", nil)
			return
		}
		supplierID = *req.SupplierID
	}

	replaceItems := len(req.Items) > 0 || supplierChanged
	var newItems []models.PurchaseOrderItem
	if supplierChanged && len(req.Items) == 0 {
		// Supplier switch without a fresh item list discards the old
		// lines entirely.
		newItems = nil
	} else if replaceItems {
		built, err := buildPurchaseOrderItems(tx, supplierID, req.Items)
		if err != nil {
			tx.Rollback()
			utils.LogError("Failed to build order items: %v", err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		newItems = built
	}

	if replaceItems {
		if err := tx.Where("purchase_order_id = ?", order.ID).
			Delete(&models.PurchaseOrderItem{}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear order items for %s: %v", order.OrderNumber, err)
			utils.InternalServerError(c, "Failed to update order items", nil)
			return
		}
		for i := range newItems {
			newItems[i].PurchaseOrderID = order.ID
		}
		if len(newItems) > 0 {
			if err := tx.Create(&newItems).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to create order items for %s: %v", order.OrderNumber, err)
				utils.InternalServerError(c, "Failed to update order items", nil)
				return
			}
		}
		order.Items = newItems
	}

	updates := map[string]interface{}{
		"supplier_id":  supplierID,
		"total_amount": order.ComputeTotal(),
		"updated_at":   time.Now(),
	}
	if req.ExpectedDate != nil {
		parsed := utils.ToUTC(*req.ExpectedDate)
		if parsed == nil {
			tx.Rollback()
			utils.ValidationError(c, "Validation failed", utils.FieldValidationErrors{
				{Field: "expected_date", Message: "invalid date format"},
			})
			return
		}
		updates["expected_date"] = *parsed
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := tx.Model(&order).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update purchase order %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Failed to update purchase order", nil)
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

	utils.LogInfo("Successfully updated purchase order %s", order.OrderNumber)
	utils.Success(c, "Purchase order updated successfully", gin.H{
		"order": formatPurchaseOrderDetails(&order),
	})
}
