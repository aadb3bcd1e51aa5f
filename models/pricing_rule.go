package models

import (
	"time"

	"gorm.io/gorm"
)

// Pricing rule type constants
const (
	RuleTypeQuantityDiscount = "quantity_discount"
	RuleTypePromotionalPrice = "promotional_price"
	RuleTypeCategoryDiscount = "category_discount"
	RuleTypeTimeBased        = "time_based"
)

// Discount type constants
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PricingRule targets either a product or a category, never both.
type PricingRule struct {
	gorm.Model
	Name          string     `json:"name" gorm:"not null"`
	Type          string     `json:"type" gorm:"not null"`
	ProductID     *uint      `json:"product_id" gorm:"index"`
	Product       *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CategoryID    *uint      `json:"category_id" gorm:"index"`
	Category      *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	PromotionID   *uint      `json:"promotion_id" gorm:"index"`
	DiscountType  string     `json:"discount_type" gorm:"not null"`
	DiscountValue float64    `json:"discount_value" gorm:"not null"`
	MinQuantity   int        `json:"min_quantity" gorm:"default:1"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
}

// ValidRuleType reports whether t is a known pricing rule type.
func ValidRuleType(t string) bool {
	switch t {
	case RuleTypeQuantityDiscount, RuleTypePromotionalPrice, RuleTypeCategoryDiscount, RuleTypeTimeBased:
		return true
	}
	return false
}

// ValidDiscountType reports whether t is a known discount type.
func ValidDiscountType(t string) bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}
