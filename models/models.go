package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Admin represents a back-office administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Blocked     bool   `json:"blocked" gorm:"default:false"`
}

// BeforeSave hook to standardize category names
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Supplier represents a goods supplier
type Supplier struct {
	gorm.Model
	Name          string `json:"name" gorm:"index;not null"`
	Code          string `json:"code" gorm:"uniqueIndex"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`
}

// Product represents a sellable product
type Product struct {
	gorm.Model
	Name       string          `json:"name" gorm:"index;not null"`
	SKU        string          `json:"sku"`
	Barcode    string          `json:"barcode" gorm:"uniqueIndex"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Stock      int             `json:"stock" gorm:"default:0"`
	CategoryID uint            `json:"category_id" gorm:"index"`
	Category   Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	SupplierID uint            `json:"supplier_id" gorm:"index"`
	Supplier   Supplier        `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	IsActive   bool            `json:"is_active" gorm:"default:true"`
}
