package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// purchaseOrderListQuery applies the shared list filters: search on
// order number, supplier, status, and a day-snapped date range.
func purchaseOrderListQuery(c *gin.Context, search string) *gorm.DB {
	query := config.DB.Model(&models.PurchaseOrder{})
	if search != "" {
		query = query.Where("order_number ILIKE ?", "%"+search+"%")
	}
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	from, to := utils.DayRangeToUTC(c.Query("start_date"), c.Query("end_date"))
	if from != nil {
		query = query.Where("order_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("order_date <= ?", *to)
	}
	return query
}

// ListPurchaseOrders returns a paged, filtered purchase order list
func ListPurchaseOrders(c *gin.Context) {
	utils.LogInfo("ListPurchaseOrders called")

	pagination := utils.NewPagination(c)
	query := purchaseOrderListQuery(c, pagination.Search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count purchase orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch purchase orders", err.Error())
		return
	}
	pagination.SetTotal(total)

	var orders []models.PurchaseOrder
	if err := query.Preload("Supplier").Preload("Items").
		Order("created_at DESC, id DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch purchase orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch purchase orders", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(orders))
	for i := range orders {
		formatted = append(formatted, formatPurchaseOrder(&orders[i]))
	}

	utils.LogInfo("Successfully retrieved %d purchase orders", len(formatted))
	utils.SuccessWithPagination(c, "Purchase orders retrieved successfully", gin.H{
		"orders": formatted,
	}, total, pagination.Page, pagination.Limit)
}

// GetPurchaseOrder returns a purchase order with items and invoices
func GetPurchaseOrder(c *gin.Context) {
	utils.LogInfo("GetPurchaseOrder called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.Preload("Supplier").Preload("Items.Product").Preload("Invoices").
		First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	utils.LogInfo("Successfully retrieved purchase order %s", order.OrderNumber)
	utils.Success(c, "Purchase order retrieved successfully", gin.H{
		"order": formatPurchaseOrderDetails(&order),
	})
}

// formatPurchaseOrder renders the list view of an order.
func formatPurchaseOrder(o *models.PurchaseOrder) gin.H {
	formatted := gin.H{
		"id":           o.ID,
		"order_number": o.OrderNumber,
		"supplier_id":  o.SupplierID,
		"supplier":     o.Supplier.Name,
		"order_date":   o.OrderDate.UTC().Format(time.RFC3339),
		"status":       o.Status,
		"total_amount": o.TotalAmount,
		"item_count":   len(o.Items),
		"created_at":   o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if !o.ExpectedDate.IsZero() {
		formatted["expected_date"] = o.ExpectedDate.UTC().Format(time.RFC3339)
	}
	if o.ReceivedDate != nil {
		formatted["received_date"] = o.ReceivedDate.UTC().Format(time.RFC3339)
	}
	return formatted
}

// formatPurchaseOrderDetails renders the full order with line items
// and invoices.
func formatPurchaseOrderDetails(o *models.PurchaseOrder) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, gin.H{
			"id":                item.ID,
			"product_id":        item.ProductID,
			"product":           item.Product.Name,
			"quantity":          item.Quantity,
			"received_quantity": item.ReceivedQuantity,
			"unit_price":        item.UnitPrice,
			"subtotal":          item.Subtotal,
		})
	}
	invoices := make([]gin.H, 0, len(o.Invoices))
	for _, invoice := range o.Invoices {
		invoices = append(invoices, gin.H{
			"id":             invoice.ID,
			"invoice_number": invoice.InvoiceNumber,
			"amount":         invoice.Amount,
			"invoice_date":   invoice.InvoiceDate.UTC().Format(time.RFC3339),
			"file_ref":       invoice.FileRef,
		})
	}

	details := formatPurchaseOrder(o)
	details["notes"] = o.Notes
	details["items"] = items
	details["invoices"] = invoices
	return details
}
