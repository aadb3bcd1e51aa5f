package models

import (
	"time"

	"gorm.io/gorm"
)

// PurchaseOrderTemplate is a reusable item list bound to a supplier.
// Instantiating a template produces a draft purchase order priced from
// current product data.
type PurchaseOrderTemplate struct {
	gorm.Model
	Name        string                      `json:"name" gorm:"not null"`
	Description string                      `json:"description"`
	SupplierID  uint                        `json:"supplier_id" gorm:"index;not null"`
	Supplier    Supplier                    `json:"supplier" gorm:"foreignKey:SupplierID"`
	Items       []PurchaseOrderTemplateItem `json:"items" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

type PurchaseOrderTemplateItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TemplateID uint      `json:"template_id" gorm:"index;not null"`
	ProductID  uint      `json:"product_id" gorm:"index;not null"`
	Product    Product   `json:"product" gorm:"foreignKey:ProductID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
