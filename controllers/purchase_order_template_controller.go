package controllers

import (
	"fmt"
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TemplateItemRequest represents a single template line
type TemplateItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// PurchaseOrderTemplateRequest represents the request body for
// creating or replacing a template
type PurchaseOrderTemplateRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	SupplierID  uint                  `json:"supplier_id" binding:"required"`
	Items       []TemplateItemRequest `json:"items" binding:"required"`
}

// ListPurchaseOrderTemplates returns a paged, searchable template list
func ListPurchaseOrderTemplates(c *gin.Context) {
	utils.LogInfo("ListPurchaseOrderTemplates called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.PurchaseOrderTemplate{})
	if pagination.Search != "" {
		query = query.Where("name ILIKE ?", "%"+pagination.Search+"%")
	}
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count templates: %v", err)
		utils.InternalServerError(c, "Failed to fetch templates", err.Error())
		return
	}
	pagination.SetTotal(total)

	var templates []models.PurchaseOrderTemplate
	if err := query.Preload("Supplier").Preload("Items").
		Order("name ASC, id ASC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&templates).Error; err != nil {
		utils.LogError("Failed to fetch templates: %v", err)
		utils.InternalServerError(c, "Failed to fetch templates", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(templates))
	for i := range templates {
		formatted = append(formatted, formatTemplate(&templates[i]))
	}

	utils.LogInfo("Successfully retrieved %d templates", len(formatted))
	utils.SuccessWithPagination(c, "Templates retrieved successfully", gin.H{
		"templates": formatted,
	}, total, pagination.Page, pagination.Limit)
}

// GetPurchaseOrderTemplate returns a template with its items
func GetPurchaseOrderTemplate(c *gin.Context) {
	utils.LogInfo("GetPurchaseOrderTemplate called")

	id := c.Param("id")
	var template models.PurchaseOrderTemplate
	if err := config.DB.Preload("Supplier").Preload("Items.Product").First(&template, id).Error; err != nil {
		utils.LogError("Template not found: %s", id)
		utils.NotFound(c, "Template not found")
		return
	}

	utils.LogInfo("Successfully retrieved template %d", template.ID)
	utils.Success(c, "Template retrieved successfully", gin.H{
		"template": formatTemplate(&template),
	})
}

// CreatePurchaseOrderTemplate creates a reusable order template
func CreatePurchaseOrderTemplate(c *gin.Context) {
	utils.LogInfo("CreatePurchaseOrderTemplate called")

	var req PurchaseOrderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var fieldErrs utils.FieldValidationErrors
	if len(req.Items) == 0 {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range req.Items {
		if err := utils.ValidateQuantity(item.Quantity); err != nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: err.Error(),
			})
		}
	}
	if len(fieldErrs) > 0 {
		utils.LogError("Template validation failed: %v", fieldErrs)
		utils.ValidationError(c, "Validation failed", fieldErrs)
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, req.SupplierID).Error; err != nil {
		utils.LogError("Supplier not found: %d", req.SupplierID)
		utils.BadRequest(c, "Supplier not found", nil)
		return
	}

	template := models.PurchaseOrderTemplate{
		Name:        req.Name,
		Description: req.Description,
		SupplierID:  req.SupplierID,
	}
	for _, item := range req.Items {
		template.Items = append(template.Items, models.PurchaseOrderTemplateItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := config.DB.Create(&template).Error; err != nil {
		utils.LogError("Failed to create template: %v", err)
		utils.InternalServerError(c, "Failed to create template", err.Error())
		return
	}

	utils.LogInfo("Successfully created template %d: %s", template.ID, template.Name)
	utils.Created(c, "Template created successfully", gin.H{
		"template": formatTemplate(&template),
	})
}

// DeletePurchaseOrderTemplate removes a template
func DeletePurchaseOrderTemplate(c *gin.Context) {
	utils.LogInfo("DeletePurchaseOrderTemplate called")

	id := c.Param("id")
	result := config.DB.Delete(&models.PurchaseOrderTemplate{}, id)
	if result.Error != nil {
		utils.LogError("Failed to delete template %s: %v", id, result.Error)
		utils.InternalServerError(c, "Failed to delete template", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.LogError("Template not found: %s", id)
		utils.NotFound(c, "Template not found")
		return
	}

	utils.LogInfo("Successfully deleted template %s", id)
	utils.Success(c, "Template deleted successfully", nil)
}

// CreateOrderFromTemplate instantiates a draft purchase order from a
// template, priced from current product data.
func CreateOrderFromTemplate(c *gin.Context) {
	utils.LogInfo("CreateOrderFromTemplate called")

	id := c.Param("id")
	var template models.PurchaseOrderTemplate
	if err := config.DB.Preload("Items.Product").First(&template, id).Error; err != nil {
		utils.LogError("Template not found: %s", id)
		utils.NotFound(c, "Template not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	orderNumber, err := nextOrderNumber(tx)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to generate order number: %v", err)
		utils.InternalServerError(c, "Failed to generate order number", nil)
		return
	}

	order := models.PurchaseOrder{
		OrderNumber: orderNumber,
		SupplierID:  template.SupplierID,
		OrderDate:   time.Now().UTC(),
		Status:      models.PurchaseOrderStatusDraft,
		Notes:       fmt.Sprintf("Created from template: %s", template.Name),
	}
	for _, item := range template.Items {
		order.Items = append(order.Items, models.PurchaseOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	order.TotalAmount = order.ComputeTotal()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order from template %d: %v", template.ID, err)
		utils.InternalServerError(c, "Failed to create order from template", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Created purchase order %s from template %d", order.OrderNumber, template.ID)
	utils.Created(c, "Purchase order created from template", gin.H{
		"order": formatPurchaseOrder(&order),
	})
}

// formatTemplate renders a template for API responses.
func formatTemplate(t *models.PurchaseOrderTemplate) gin.H {
	items := make([]gin.H, 0, len(t.Items))
	for _, item := range t.Items {
		formatted := gin.H{
			"id":         item.ID,
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
		}
		if item.Product.ID != 0 {
			formatted["product"] = item.Product.Name
		}
		items = append(items, formatted)
	}
	return gin.H{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"supplier_id": t.SupplierID,
		"supplier":    t.Supplier.Name,
		"items":       items,
		"created_at":  t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
