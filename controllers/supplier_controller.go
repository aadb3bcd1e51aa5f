package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// SupplierRequest represents the request body for creating or
// updating a supplier
type SupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	IsActive      *bool  `json:"is_active"`
}

// ListSuppliers returns a paged supplier list for the supplier
// autocomplete field
func ListSuppliers(c *gin.Context) {
	utils.LogInfo("ListSuppliers called")

	pagination := utils.NewLookupPagination(c)

	query := config.DB.Model(&models.Supplier{}).Where("is_active = ?", true)
	if pagination.Search != "" {
		search := "%" + pagination.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count suppliers: %v", err)
		utils.InternalServerError(c, "Failed to fetch suppliers", err.Error())
		return
	}
	pagination.SetTotal(total)

	var suppliers []models.Supplier
	if err := query.Order("name ASC, id ASC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&suppliers).Error; err != nil {
		utils.LogError("Failed to fetch suppliers: %v", err)
		utils.InternalServerError(c, "Failed to fetch suppliers", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(suppliers))
	for _, supplier := range suppliers {
		formatted = append(formatted, formatSupplier(&supplier))
	}

	utils.LogInfo("Successfully retrieved %d suppliers", len(formatted))
	utils.SuccessWithPagination(c, "Suppliers retrieved successfully", gin.H{
		"suppliers": formatted,
	}, total, pagination.Page, pagination.Limit)
}

// CreateSupplier creates a new supplier
func CreateSupplier(c *gin.Context) {
	utils.LogInfo("CreateSupplier called")

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Email != "" {
		if valid, msg := utils.ValidateEmail(req.Email); !valid {
			utils.ValidationError(c, "Validation failed", utils.FieldValidationErrors{
				{Field: "email", Message: msg},
			})
			return
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	supplier := models.Supplier{
		Name:          req.Name,
		Code:          req.Code,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
		IsActive:      isActive,
	}

	if err := config.DB.Create(&supplier).Error; err != nil {
		utils.LogError("Failed to create supplier: %v", err)
		utils.InternalServerError(c, "Failed to create supplier", err.Error())
		return
	}

	utils.LogInfo("Successfully created supplier %d: %s", supplier.ID, supplier.Name)
	utils.Created(c, "Supplier created successfully", gin.H{
		"supplier": formatSupplier(&supplier),
	})
}

// UpdateSupplier updates an existing supplier
func UpdateSupplier(c *gin.Context) {
	utils.LogInfo("UpdateSupplier called")

	id := c.Param("id")
	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.LogError("Supplier not found: %s", id)
		utils.NotFound(c, "Supplier not found")
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for supplier %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Email != "" {
		if valid, msg := utils.ValidateEmail(req.Email); !valid {
			utils.ValidationError(c, "Validation failed", utils.FieldValidationErrors{
				{Field: "email", Message: msg},
			})
			return
		}
	}

	updates := map[string]interface{}{
		"name":           req.Name,
		"code":           req.Code,
		"contact_person": req.ContactPerson,
		"email":          req.Email,
		"phone":          req.Phone,
		"address":        req.Address,
		"notes":          req.Notes,
		"updated_at":     time.Now(),
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&supplier).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update supplier %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update supplier", nil)
		return
	}

	if err := config.DB.First(&supplier, supplier.ID).Error; err != nil {
		utils.LogError("Failed to reload supplier %d: %v", supplier.ID, err)
		utils.InternalServerError(c, "Failed to load updated supplier", nil)
		return
	}

	utils.LogInfo("Successfully updated supplier %d", supplier.ID)
	utils.Success(c, "Supplier updated successfully", gin.H{
		"supplier": formatSupplier(&supplier),
	})
}

// formatSupplier renders a supplier for API responses.
func formatSupplier(s *models.Supplier) gin.H {
	return gin.H{
		"id":             s.ID,
		"name":           s.Name,
		"code":           s.Code,
		"contact_person": s.ContactPerson,
		"email":          s.Email,
		"phone":          s.Phone,
		"address":        s.Address,
		"is_active":      s.IsActive,
	}
}
