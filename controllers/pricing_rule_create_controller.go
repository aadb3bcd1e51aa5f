package controllers

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
)

// PricingRuleRequest represents the request body for creating or
// replacing a pricing rule
type PricingRuleRequest struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	ProductID     *uint   `json:"product_id"`
	CategoryID    *uint   `json:"category_id"`
	PromotionID   *uint   `json:"promotion_id"`
	DiscountType  string  `json:"discount_type" binding:"required"`
	DiscountValue float64 `json:"discount_value" binding:"required"`
	MinQuantity   int     `json:"min_quantity"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	IsActive      *bool   `json:"is_active"`
}

// validatePricingRule runs every shape check before any database work:
// target mutual exclusion, discount bounds, quantity, and the optional
// date window.
func validatePricingRule(req *PricingRuleRequest) (*time.Time, *time.Time, utils.FieldValidationErrors) {
	var fieldErrs utils.FieldValidationErrors

	if !models.ValidRuleType(req.Type) {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "type", Message: "unknown rule type"})
	}
	if !models.ValidDiscountType(req.DiscountType) {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "discount_type", Message: "must be percentage or fixed"})
	} else if err := utils.ValidateDiscountValue(req.DiscountType, req.DiscountValue); err != nil {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "discount_value", Message: err.Error()})
	}
	if err := utils.ValidateMutualExclusion(req.ProductID, req.CategoryID, "product", "category"); err != nil {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "category_id", Message: err.Error()})
	}
	if req.MinQuantity < 0 {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "min_quantity", Message: "must not be negative"})
	}

	var start, end *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		start = utils.ToUTC(*req.StartDate)
		if start == nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "start_date", Message: "invalid date format"})
		}
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end = utils.ToUTC(*req.EndDate)
		if end == nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "end_date", Message: "invalid date format"})
		}
	}
	if start != nil && end != nil {
		if err := utils.ValidateDateOrder(*start, *end); err != nil {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "end_date", Message: err.Error()})
		}
	}

	return start, end, fieldErrs
}

// CreatePricingRule creates a new pricing rule
func CreatePricingRule(c *gin.Context) {
	utils.LogInfo("CreatePricingRule called")

	var req PricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogDebug("Processing pricing rule creation: %s", req.Name)

	start, end, fieldErrs := validatePricingRule(&req)
	if len(fieldErrs) > 0 {
		utils.LogError("Pricing rule validation failed: %v", fieldErrs)
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
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	rule := models.PricingRule{
		Name:          req.Name,
		Type:          req.Type,
		ProductID:     req.ProductID,
		CategoryID:    req.CategoryID,
		PromotionID:   req.PromotionID,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinQuantity:   minQuantity,
		StartDate:     start,
		EndDate:       end,
		IsActive:      isActive,
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		utils.LogError("Failed to create pricing rule: %v", err)
		utils.InternalServerError(c, "Failed to create pricing rule", err.Error())
		return
	}

	utils.LogInfo("Successfully created pricing rule %d: %s", rule.ID, rule.Name)
	utils.Created(c, "Pricing rule created successfully", gin.H{
		"rule": formatPricingRule(&rule),
	})
}

// formatPricingRule renders a pricing rule for API responses.
func formatPricingRule(r *models.PricingRule) gin.H {
	formatted := gin.H{
		"id":             r.ID,
		"name":           r.Name,
		"type":           r.Type,
		"product_id":     r.ProductID,
		"category_id":    r.CategoryID,
		"promotion_id":   r.PromotionID,
		"discount_type":  r.DiscountType,
		"discount_value": r.DiscountValue,
		"min_quantity":   r.MinQuantity,
		"is_active":      r.IsActive,
		"created_at":     r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if r.StartDate != nil {
		formatted["start_date"] = r.StartDate.UTC().Format(time.RFC3339)
	}
	if r.EndDate != nil {
		formatted["end_date"] = r.EndDate.UTC().Format(time.RFC3339)
	}
	return formatted
}
