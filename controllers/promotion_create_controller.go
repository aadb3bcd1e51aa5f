package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// CreatePromotionRequest represents the request body for creating a promotion
type CreatePromotionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

// validatePromotionDates parses and orders the promotion window. All
// shape checks run before any database work.
func validatePromotionDates(startDate, endDate string) (*time.Time, *time.Time, utils.FieldValidationErrors) {
	var fieldErrs utils.FieldValidationErrors

	start := utils.ToUTC(startDate)
	if start == nil {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "start_date", Message: "invalid date format"})
	}
	end := utils.ToUTC(endDate)
	if end == nil {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "end_date", Message: "invalid date format"})
	}
	if start != nil && end != nil {
		if err := utils.ValidateDateOrder(*start, *end); err != nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "end_date", Message: err.Error()})
		}
	}
	return start, end, fieldErrs
}

// CreatePromotion creates a new promotion
func CreatePromotion(c *gin.Context) {
	utils.LogInfo("CreatePromotion called")

	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogDebug("Processing promotion creation: %s", req.Name)

	var fieldErrs utils.FieldValidationErrors
	if !models.ValidPromotionType(req.Type) {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "type", Message: "unknown promotion type"})
	}
	if err := utils.ValidateStringLength(req.Name, 2, 100); err != nil {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "name", Message: err.Error()})
	}
	start, end, dateErrs := validatePromotionDates(req.StartDate, req.EndDate)
	fieldErrs = append(fieldErrs, dateErrs...)
	if len(fieldErrs) > 0 {
		utils.LogError("Promotion validation failed: %v", fieldErrs)
		utils.ValidationError(c, "Validation failed", fieldErrs)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	promotion := models.Promotion{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		StartDate:   *start,
		EndDate:     *end,
		IsActive:    isActive,
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		utils.LogError("Failed to create promotion: %v", err)
		utils.InternalServerError(c, "Failed to create promotion", err.Error())
		return
	}

	utils.LogInfo("Successfully created promotion %d: %s", promotion.ID, promotion.Name)
	utils.Created(c, "Promotion created successfully", gin.H{
		"promotion": formatPromotion(&promotion),
	})
}

// formatPromotion renders a promotion with its derived running state.
func formatPromotion(p *models.Promotion) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"type":        p.Type,
		"start_date":  p.StartDate.UTC().Format(time.RFC3339),
		"end_date":    p.EndDate.UTC().Format(time.RFC3339),
		"is_active":   p.IsActive,
		"is_running":  p.IsRunning(time.Now(), storeLocation()),
		"created_at":  p.CreatedAt.Format("2006-01-02 15:04:05"),
		"updated_at":  p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func storeLocation() *time.Location {
	if config.StoreLocation != nil {
		return config.StoreLocation
	}
	return time.UTC
}
