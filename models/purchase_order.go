package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase order status constants
const (
	PurchaseOrderStatusDraft             = "draft"
	PurchaseOrderStatusPending           = "pending"
	PurchaseOrderStatusPartiallyReceived = "partially_received"
	PurchaseOrderStatusReceived          = "received"
	PurchaseOrderStatusCancelled         = "cancelled"
)

type PurchaseOrder struct {
	gorm.Model
	OrderNumber  string                 `json:"order_number" gorm:"uniqueIndex;not null"`
	SupplierID   uint                   `json:"supplier_id" gorm:"index;not null"`
	Supplier     Supplier               `json:"supplier" gorm:"foreignKey:SupplierID"`
	OrderDate    time.Time              `json:"order_date" gorm:"not null"`
	ExpectedDate time.Time              `json:"expected_date"`
	ReceivedDate *time.Time             `json:"received_date"`
	Status       string                 `json:"status" gorm:"not null;default:'draft'"`
	Notes        string                 `json:"notes"`
	TotalAmount  decimal.Decimal        `json:"total_amount" gorm:"type:numeric(14,2)"`
	Items        []PurchaseOrderItem    `json:"items" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	Invoices     []PurchaseOrderInvoice `json:"invoices,omitempty" gorm:"foreignKey:PurchaseOrderID"`
}

type PurchaseOrderItem struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	PurchaseOrderID  uint            `json:"purchase_order_id" gorm:"index;not null"`
	ProductID        uint            `json:"product_id" gorm:"index;not null"`
	Product          Product         `json:"product" gorm:"foreignKey:ProductID"`
	Quantity         int             `json:"quantity" gorm:"not null"`
	ReceivedQuantity int             `json:"received_quantity" gorm:"default:0"`
	UnitPrice        decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,2)"`
	Subtotal         decimal.Decimal `json:"subtotal" gorm:"type:numeric(14,2)"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type PurchaseOrderInvoice struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	PurchaseOrderID uint            `json:"purchase_order_id" gorm:"index;not null"`
	InvoiceNumber   string          `json:"invoice_number" gorm:"not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(14,2)"`
	InvoiceDate     time.Time       `json:"invoice_date"`
	FileRef         string          `json:"file_ref"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Editable reports whether the order's items may still be modified.
func (o *PurchaseOrder) Editable() bool {
	return o.Status == PurchaseOrderStatusDraft || o.Status == PurchaseOrderStatusPending
}

// ComputeTotal sums item subtotals.
func (o *PurchaseOrder) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// DeriveReceivingStatus returns the status implied by the received
// quantities on the order's items. Orders with nothing received keep
// their current status.
func (o *PurchaseOrder) DeriveReceivingStatus() string {
	received := 0
	ordered := 0
	for _, item := range o.Items {
		ordered += item.Quantity
		received += item.ReceivedQuantity
	}
	switch {
	case ordered > 0 && received >= ordered:
		return PurchaseOrderStatusReceived
	case received > 0:
		return PurchaseOrderStatusPartiallyReceived
	default:
		return o.Status
	}
}

// ValidStatusTransition reports whether an order may move from one
// status to another. Received and cancelled orders are terminal.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case PurchaseOrderStatusDraft:
		return to == PurchaseOrderStatusPending || to == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusPending:
		return to == PurchaseOrderStatusPartiallyReceived ||
			to == PurchaseOrderStatusReceived ||
			to == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusPartiallyReceived:
		return to == PurchaseOrderStatusReceived
	}
	return false
}
