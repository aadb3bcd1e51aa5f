package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// UpdatePromotionRequest represents the request body for updating a promotion
type UpdatePromotionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsActive    *bool   `json:"is_active"`
}

// UpdatePromotion updates an existing promotion
func UpdatePromotion(c *gin.Context) {
	utils.LogInfo("UpdatePromotion called")

	id := c.Param("id")
	if id == "" {
		utils.BadRequest(c, "Promotion id is required", nil)
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for promotion %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, id).Error; err != nil {
		utils.LogError("Promotion not found: %s", id)
		utils.NotFound(c, "Promotion not found")
		return
	}

	// Resolve the prospective window first so the ordering check covers
	// partial updates that move only one bound.
	start := promotion.StartDate
	end := promotion.EndDate
	var fieldErrs utils.FieldValidationErrors

	if req.StartDate != nil {
		parsed := utils.ToUTC(*req.StartDate)
		if parsed == nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "start_date", Message: "invalid date format"})
		} else {
			start = *parsed
		}
	}
	if req.EndDate != nil {
		parsed := utils.ToUTC(*req.EndDate)
		if parsed == nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "end_date", Message: "invalid date format"})
		} else {
			end = *parsed
		}
	}
	if len(fieldErrs) == 0 {
		if err := utils.ValidateDateOrder(start, end); err != nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "end_date", Message: err.Error()})
		}
	}
	if req.Type != nil && !models.ValidPromotionType(*req.Type) {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "type", Message: "unknown promotion type"})
	}
	if req.Name != nil {
		if err := utils.ValidateStringLength(*req.Name, 2, 100); err != nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "name", Message: err.Error()})
		}
	}
	if len(fieldErrs) > 0 {
		utils.LogError("Promotion %s validation failed: %v", id, fieldErrs)
		utils.ValidationError(c, "Validation failed", fieldErrs)
		return
	}

	updates := map[string]interface{}{
		"start_date": start,
		"end_date":   end,
		"updated_at": time.Now(),
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&promotion).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update promotion %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update promotion", nil)
		return
	}

	if err := config.DB.First(&promotion, promotion.ID).Error; err != nil {
		utils.LogError("Failed to reload promotion %d: %v", promotion.ID, err)
		utils.InternalServerError(c, "Failed to load updated promotion", nil)
		return
	}

	utils.LogInfo("Successfully updated promotion %d", promotion.ID)
	utils.Success(c, "Promotion updated successfully", gin.H{
		"promotion": formatPromotion(&promotion),
	})
}
