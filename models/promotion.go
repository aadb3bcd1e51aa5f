package models

import (
	"time"

	"gorm.io/gorm"
)

// Promotion type constants
const (
	PromotionTypeProduct   = "product_promotion"
	PromotionTypeCategory  = "category_promotion"
	PromotionTypeStoreWide = "store_wide"
)

type Promotion struct {
	gorm.Model
	Name        string        `json:"name" gorm:"not null"`
	Description string        `json:"description"`
	Type        string        `json:"type" gorm:"not null"`
	StartDate   time.Time     `json:"start_date" gorm:"not null"`
	EndDate     time.Time     `json:"end_date" gorm:"not null;index"`
	IsActive    bool          `json:"is_active" gorm:"default:true"`
	Rules       []PricingRule `json:"rules,omitempty" gorm:"foreignKey:PromotionID"`
}

// ValidPromotionType reports whether t is a known promotion type.
func ValidPromotionType(t string) bool {
	switch t {
	case PromotionTypeProduct, PromotionTypeCategory, PromotionTypeStoreWide:
		return true
	}
	return false
}

// IsRunning reports whether the promotion is active and the given instant
// falls within its date window, evaluated in the store timezone.
func (p *Promotion) IsRunning(now time.Time, loc *time.Location) bool {
	if !p.IsActive {
		return false
	}
	local := now.In(loc)
	return !local.Before(p.StartDate.In(loc)) && !local.After(p.EndDate.In(loc))
}
