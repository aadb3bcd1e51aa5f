package controllers

import (
	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// ListPricingRules returns a paged, searchable pricing rule list
func ListPricingRules(c *gin.Context) {
	utils.LogInfo("ListPricingRules called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.PricingRule{})
	if pagination.Search != "" {
		query = query.Where("name ILIKE ?", "%"+pagination.Search+"%")
	}
	if ruleType := c.Query("type"); ruleType != "" {
		query = query.Where("type = ?", ruleType)
	}
	if promotionID := c.Query("promotion_id"); promotionID != "" {
		query = query.Where("promotion_id = ?", promotionID)
	}
	if active := c.Query("active"); active == "true" {
		query = query.Where("is_active = ?", true)
	} else if active == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count pricing rules: %v", err)
		utils.InternalServerError(c, "Failed to fetch pricing rules", err.Error())
		return
	}
	pagination.SetTotal(total)

	var rules []models.PricingRule
	if err := query.Order("created_at DESC, id DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&rules).Error; err != nil {
		utils.LogError("Failed to fetch pricing rules: %v", err)
		utils.InternalServerError(c, "Failed to fetch pricing rules", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(rules))
	for i := range rules {
		formatted = append(formatted, formatPricingRule(&rules[i]))
	}

	utils.LogInfo("Successfully retrieved %d pricing rules", len(formatted))
	utils.SuccessWithPagination(c, "Pricing rules retrieved successfully", gin.H{
		"rules": formatted,
	}, total, pagination.Page, pagination.Limit)
}

// GetPricingRule returns a single pricing rule
func GetPricingRule(c *gin.Context) {
	utils.LogInfo("GetPricingRule called")

	id := c.Param("id")
	var rule models.PricingRule
	if err := config.DB.Preload("Product").Preload("Category").First(&rule, id).Error; err != nil {
		utils.LogError("Pricing rule not found: %s", id)
		utils.NotFound(c, "Pricing rule not found")
		return
	}

	utils.LogInfo("Successfully retrieved pricing rule %d", rule.ID)
	utils.Success(c, "Pricing rule retrieved successfully", gin.H{
		"rule": formatPricingRule(&rule),
	})
}

// DeletePricingRule soft-deletes a pricing rule
func DeletePricingRule(c *gin.Context) {
	utils.LogInfo("DeletePricingRule called")

	id := c.Param("id")
	result := config.DB.Delete(&models.PricingRule{}, id)
	if result.Error != nil {
		utils.LogError("Failed to delete pricing rule %s: %v", id, result.Error)
		utils.InternalServerError(c, "Failed to delete pricing rule", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.LogError("Pricing rule not found: %s", id)
		utils.NotFound(c, "Pricing rule not found")
		return
	}

	utils.LogInfo("Successfully deleted pricing rule %s", id)
	utils.Success(c, "Pricing rule deleted successfully", nil)
}
