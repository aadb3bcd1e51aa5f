package controllers

import (
	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// ListPromotions returns a paged, searchable promotion list
func ListPromotions(c *gin.Context) {
	utils.LogInfo("ListPromotions called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Promotion{})
	if pagination.Search != "" {
		search := "%" + pagination.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", search, search)
	}
	if promotionType := c.Query("type"); promotionType != "" {
		query = query.Where("type = ?", promotionType)
	}
	if active := c.Query("active"); active == "true" {
		query = query.Where("is_active = ?", true)
	} else if active == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count promotions: %v", err)
		utils.InternalServerError(c, "Failed to fetch promotions", err.Error())
		return
	}
	pagination.SetTotal(total)

	var promotions []models.Promotion
	if err := query.Order("created_at DESC, id DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&promotions).Error; err != nil {
		utils.LogError("Failed to fetch promotions: %v", err)
		utils.InternalServerError(c, "Failed to fetch promotions", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(promotions))
	for i := range promotions {
		formatted = append(formatted, formatPromotion(&promotions[i]))
	}

	utils.LogInfo("Successfully retrieved %d promotions", len(formatted))
	utils.SuccessWithPagination(c, "Promotions retrieved successfully", gin.H{
		"promotions": formatted,
	}, total, pagination.Page, pagination.Limit)
}
