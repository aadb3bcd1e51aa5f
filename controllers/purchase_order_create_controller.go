package controllers

import (
	"fmt"
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrderItemRequest represents a single order line
type PurchaseOrderItemRequest struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest represents the request body for creating
// a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID   uint                       `json:"supplier_id" binding:"required"`
	OrderDate    string                     `json:"order_date"`
	ExpectedDate string                     `json:"expected_date"`
	Notes        string                     `json:"notes"`
	Submit       bool                       `json:"submit"`
	Items        []PurchaseOrderItemRequest `json:"items" binding:"required"`
}

// validatePurchaseOrderItems checks item shape before any database work.
func validatePurchaseOrderItems(items []PurchaseOrderItemRequest) utils.FieldValidationErrors {
	var fieldErrs utils.FieldValidationErrors
	if len(items) == 0 {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "items", Message: "at least one item is required"})
		return fieldErrs
	}
	for i, item := range items {
		if err := utils.ValidateQuantity(item.Quantity); err != nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: err.Error(),
			})
		}
		if item.UnitPrice.IsNegative() {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "must not be negative",
			})
		}
	}
	return fieldErrs
}

// buildPurchaseOrderItems resolves products, verifies they belong to
// the order's supplier, and prices each line. An item with a zero unit
// price falls back to the product's current price.
func buildPurchaseOrderItems(tx *gorm.DB, supplierID uint, items []PurchaseOrderItemRequest) ([]models.PurchaseOrderItem, error) {
	built := make([]models.PurchaseOrderItem, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			return nil, fmt.Errorf("product %d not found", item.ProductID)
		}
		if product.SupplierID != 0 && product.SupplierID != supplierID {
			return nil, fmt.Errorf("product %d does not belong to the selected supplier", item.ProductID)
		}

		unitPrice := item.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		built = append(built, models.PurchaseOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return built, nil
}

// nextOrderNumber generates a PO-YYYYMMDD-NNNN order number from the
// count of orders created today.
func nextOrderNumber(tx *gorm.DB) (string, error) {
	today := utils.StartOfLocalDay(time.Now())
	var count int64
	if err := tx.Model(&models.PurchaseOrder{}).Unscoped().
		Where("created_at >= ?", today).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("PO-%s-%04d", time.Now().In(storeLocation()).Format("20060102"), count+1), nil
}

// CreatePurchaseOrder creates a new purchase order
func CreatePurchaseOrder(c *gin.Context) {
	utils.LogInfo("CreatePurchaseOrder called")

	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogDebug("Processing purchase order creation for supplier %d with %d items", req.SupplierID, len(req.Items))

	if fieldErrs := validatePurchaseOrderItems(req.Items); len(fieldErrs) > 0 {
		utils.LogError("Purchase order validation failed: %v", fieldErrs)
		utils.ValidationError(c, "Validation failed", fieldErrs)
		return
	}

	orderDate := time.Now().UTC()
	if req.OrderDate != "" {
		if parsed := utils.ToUTC(req.OrderDate); parsed != nil {
			orderDate = *parsed
		}
	}
	var expectedDate time.Time
	if req.ExpectedDate != "" {
		parsed := utils.ToUTC(req.ExpectedDate)
		if parsed == nil {
			utils.ValidationError(c, "Validation failed", utils.FieldValidationErrors{
				{Field: "expected_date", Message: "invalid date format"},
			})
			return
		}
		if parsed.Before(orderDate) {
			utils.ValidationError(c, "Validation failed", utils.FieldValidationErrors{
				{Field: "expected_date", Message: "end date must not precede start date"},
			})
			return
		}
		expectedDate = *parsed
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	var supplier models.Supplier
	if err := tx.First(&supplier, req.SupplierID).Error; err != nil {
		tx.Rollback()
		utils.LogError("Supplier not found: %d", req.SupplierID)
		utils.BadRequest(c, "Supplier not found", nil)
		return
	}

	items, err := buildPurchaseOrderItems(tx, req.SupplierID, req.Items)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to build order items: %v", err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	orderNumber, err := nextOrderNumber(tx)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to generate order number: %v", err)
		utils.InternalServerError(c, "Failed to generate order number", nil)
		return
	}

	status := models.PurchaseOrderStatusDraft
	if req.Submit {
		status = models.PurchaseOrderStatusPending
	}

	order := models.PurchaseOrder{
		OrderNumber:  orderNumber,
		SupplierID:   req.SupplierID,
		OrderDate:    orderDate,
		ExpectedDate: expectedDate,
		Status:       status,
		Notes:        req.Notes,
		Items:        items,
	}
	order.TotalAmount = order.ComputeTotal()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create purchase order: %v", err)
		utils.InternalServerError(c, "Failed to create purchase order", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Successfully created purchase order %s", order.OrderNumber)
	utils.Created(c, "Purchase order created successfully", gin.H{
		"order": formatPurchaseOrder(&order),
	})
}
