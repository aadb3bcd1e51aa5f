package controllers

import (
	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// GetPromotion returns a promotion with its linked pricing rules
func GetPromotion(c *gin.Context) {
	utils.LogInfo("GetPromotion called")

	id := c.Param("id")
	var promotion models.Promotion
	if err := config.DB.Preload("Rules").First(&promotion, id).Error; err != nil {
		utils.LogError("Promotion not found: %s", id)
		utils.NotFound(c, "Promotion not found")
		return
	}

	rules := make([]gin.H, 0, len(promotion.Rules))
	for i := range promotion.Rules {
		rules = append(rules, formatPricingRule(&promotion.Rules[i]))
	}

	details := formatPromotion(&promotion)
	details["rules"] = rules

	utils.LogInfo("Successfully retrieved promotion %d", promotion.ID)
	utils.Success(c, "Promotion retrieved successfully", gin.H{
		"promotion": details,
	})
}

// DeletePromotion soft-deletes a promotion and detaches its rules
func DeletePromotion(c *gin.Context) {
	utils.LogInfo("DeletePromotion called")

	id := c.Param("id")

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	result := tx.Delete(&models.Promotion{}, id)
	if result.Error != nil {
		tx.Rollback()
		utils.LogError("Failed to delete promotion %s: %v", id, result.Error)
		utils.InternalServerError(c, "Failed to delete promotion", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		utils.LogError("Promotion not found: %s", id)
		utils.NotFound(c, "Promotion not found")
		return
	}

	// Rules linked to the promotion survive but lose the association.
	if err := tx.Model(&models.PricingRule{}).
		Where("promotion_id = ?", id).
		Update("promotion_id", nil).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to detach rules from promotion %s: %v", id, err)
		utils.InternalServerError(c, "Failed to detach pricing rules", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Successfully deleted promotion %s", id)
	utils.Success(c, "Promotion deleted successfully", nil)
}
