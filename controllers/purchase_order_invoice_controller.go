package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AttachInvoiceRequest represents an invoice to attach to an order
type AttachInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	InvoiceDate   string          `json:"invoice_date"`
	FileRef       string          `json:"file_ref"`
}

// AttachPurchaseOrderInvoice records a supplier invoice against an order
func AttachPurchaseOrderInvoice(c *gin.Context) {
	utils.LogInfo("AttachPurchaseOrderInvoice called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	if order.Status == models.PurchaseOrderStatusDraft || order.Status == models.PurchaseOrderStatusCancelled {
		utils.LogError("Cannot attach invoice to order %s in status %s", order.OrderNumber, order.Status)
		utils.Conflict(c, "Invoices can only be attached to submitted orders", nil)
		return
	}

	var req AttachInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for order %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		utils.ValidationError(c, "Validation failed", utils.FieldValidationErrors{
			{Field: "amount", Message: "must be greater than 0"},
		})
		return
	}

	invoiceDate := time.Now().UTC()
	if req.InvoiceDate != "" {
		parsed := utils.ToUTC(req.InvoiceDate)
		if parsed == nil {
			utils.ValidationError(c, "Validation failed", utils.FieldValidationErrors{
				{Field: "invoice_date", Message: "invalid date format"},
			})
			return
		}
		invoiceDate = *parsed
	}

	invoice := models.PurchaseOrderInvoice{
		PurchaseOrderID: order.ID,
		InvoiceNumber:   req.InvoiceNumber,
		Amount:          req.Amount,
		InvoiceDate:     invoiceDate,
		FileRef:         req.FileRef,
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.LogError("Failed to attach invoice to order %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Failed to attach invoice", err.Error())
		return
	}

	utils.LogInfo("Attached invoice %s to purchase order %s", invoice.InvoiceNumber, order.OrderNumber)
	utils.Created(c, "Invoice attached successfully", gin.H{
		"invoice": gin.H{
			"id":             invoice.ID,
			"invoice_number": invoice.InvoiceNumber,
			"amount":         invoice.Amount,
			"invoice_date":   invoice.InvoiceDate.UTC().Format(time.RFC3339),
			"file_ref":       invoice.FileRef,
		},
	})
}
