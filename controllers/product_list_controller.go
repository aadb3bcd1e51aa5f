package controllers

import (
	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// ListProducts returns a paged product list for the autocomplete
// fields in the purchase order and pricing rule forms. Supports a
// free-text search on name or barcode and an optional supplier scope.
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	pagination := utils.NewLookupPagination(c)

	query := config.DB.Model(&models.Product{}).Where("is_active = ?", true)
	if pagination.Search != "" {
		search := "%" + pagination.Search + "%"
		query = query.Where("name ILIKE ? OR barcode ILIKE ?", search, search)
	}
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.Order("name ASC, id ASC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(products))
	for _, product := range products {
		formatted = append(formatted, gin.H{
			"id":          product.ID,
			"name":        product.Name,
			"sku":         product.SKU,
			"barcode":     product.Barcode,
			"price":       product.Price,
			"stock":       product.Stock,
			"category_id": product.CategoryID,
			"supplier_id": product.SupplierID,
		})
	}

	utils.LogInfo("Successfully retrieved %d products", len(formatted))
	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{
		"products": formatted,
	}, total, pagination.Page, pagination.Limit)
}

// GetProductByBarcode returns a single product by barcode
func GetProductByBarcode(c *gin.Context) {
	utils.LogInfo("GetProductByBarcode called")

	code := c.Param("code")
	var product models.Product
	if err := config.DB.Where("barcode = ?", code).First(&product).Error; err != nil {
		utils.LogError("Product not found for barcode: %s", code)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.LogInfo("Found product %d for barcode %s", product.ID, code)
	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": gin.H{
			"id":          product.ID,
			"name":        product.Name,
			"sku":         product.SKU,
			"barcode":     product.Barcode,
			"price":       product.Price,
			"stock":       product.Stock,
			"category_id": product.CategoryID,
			"supplier_id": product.SupplierID,
		},
	})
}
