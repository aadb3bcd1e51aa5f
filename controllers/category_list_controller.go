package controllers

import (
	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// ListCategories returns a paged category list for the category
// autocomplete field
func ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	pagination := utils.NewLookupPagination(c)

	query := config.DB.Model(&models.Category{}).Where("blocked = ?", false)
	if pagination.Search != "" {
		query = query.Where("name ILIKE ?", "%"+pagination.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}
	pagination.SetTotal(total)

	var categories []models.Category
	if err := query.Order("name ASC, id ASC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		formatted = append(formatted, gin.H{
			"id":          category.ID,
			"name":        category.Name,
			"description": category.Description,
		})
	}

	utils.LogInfo("Successfully retrieved %d categories", len(formatted))
	utils.SuccessWithPagination(c, "Categories retrieved successfully", gin.H{
		"categories": formatted,
	}, total, pagination.Page, pagination.Limit)
}
