package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// UpdatePurchaseOrderStatusRequest represents a status transition
type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePurchaseOrderStatus applies an explicit lifecycle transition.
// Receipt-driven transitions come from the receiving endpoint; this
// handles submission and cancellation.
func UpdatePurchaseOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdatePurchaseOrderStatus called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	var req UpdatePurchaseOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for order %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.ValidStatusTransition(order.Status, req.Status) {
		utils.LogError("Invalid status transition for order %s: %s -> %s", order.OrderNumber, order.Status, req.Status)
		utils.Conflict(c, "Invalid status transition", gin.H{
			"from": order.Status,
			"to":   req.Status,
		})
		return
	}

	updates := map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	}
	if req.Status == models.PurchaseOrderStatusReceived {
		now := time.Now().UTC()
		updates["received_date"] = &now
	}

	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update status for order %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Failed to update order status", nil)
		return
	}

	utils.LogInfo("Purchase order %s moved to status %s", order.OrderNumber, req.Status)
	utils.Success(c, "Purchase order status updated successfully", gin.H{
		"id":           order.ID,
		"order_number": order.OrderNumber,
		"status":       req.Status,
	})
}

// DeletePurchaseOrder soft-deletes a draft purchase order
func DeletePurchaseOrder(c *gin.Context) {
	utils.LogInfo("DeletePurchaseOrder called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	if order.Status != models.PurchaseOrderStatusDraft {
		utils.LogError("Purchase order %s cannot be deleted in status %s", order.OrderNumber, order.Status)
		utils.Conflict(c, "Only draft orders can be deleted", nil)
		return
	}

	if err := config.DB.Delete(&order).Error; err != nil {
		utils.LogError("Failed to delete purchase order %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Failed to delete purchase order", err.Error())
		return
	}

	utils.LogInfo("Successfully deleted purchase order %s", order.OrderNumber)
	utils.Success(c, "Purchase order deleted successfully", nil)
}
