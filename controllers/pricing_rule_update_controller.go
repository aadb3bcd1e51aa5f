package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// UpdatePricingRule replaces a pricing rule's definition. The update is
// a full replacement of the rule body so the product/category mutual
// exclusion cannot be bypassed by patching one side at a time.
func UpdatePricingRule(c *gin.Context) {
	utils.LogInfo("UpdatePricingRule called")

	id := c.Param("id")
	var rule models.PricingRule
	if err := config.DB.First(&rule, id).Error; err != nil {
		utils.LogError("Pricing rule not found: %s", id)
		utils.NotFound(c, "Pricing rule not found")
		return
	}

	var req PricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for rule %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	start, end, fieldErrs := validatePricingRule(&req)
	if len(fieldErrs) > 0 {
		utils.LogError("Pricing rule %s validation failed: %v", id, fieldErrs)
		utils.ValidationError(c, "Validation failed", fieldErrs)
		return
	}

	if req.PromotionID != nil {
		var promotion models.Promotion
		if err := config.DB.First(&promotion, *req.PromotionID).Error; err != nil {
			utils.LogError("Linked promotion not found: %d", *req.PromotionID)
			utils.BadRequest(c, "Linked promotion not found", nil)
			return
		}
	}

	minQuantity := req.MinQuantity
	if minQuantity == 0 {
		minQuantity = 1
	}
	isActive := rule.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	updates := map[string]interface{}{
		"name":           req.Name,
		"type":           req.Type,
		"product_id":     req.ProductID,
		"category_id":    req.CategoryID,
		"promotion_id":   req.PromotionID,
		"discount_type":  req.DiscountType,
		"discount_value": req.DiscountValue,
		"min_quantity":   minQuantity,
		"start_date":     start,
		"end_date":       end,
		"is_active":      isActive,
		"updated_at":     time.Now(),
	}

	if err := config.DB.Model(&rule).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update pricing rule %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update pricing rule", nil)
		return
	}

	if err := config.DB.First(&rule, rule.ID).Error; err != nil {
		utils.LogError("Failed to reload pricing rule %d: %v", rule.ID, err)
		utils.InternalServerError(c, "Failed to load updated pricing rule", nil)
		return
	}

	utils.LogInfo("Successfully updated pricing rule %d", rule.ID)
	utils.Success(c, "Pricing rule updated successfully", gin.H{
		"rule": formatPricingRule(&rule),
	})
}
