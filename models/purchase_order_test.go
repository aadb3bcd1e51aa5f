package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEditable(t *testing.T) {
	for status, want := range map[string]bool{
		PurchaseOrderStatusDraft:             true,
		PurchaseOrderStatusPending:           true,
		PurchaseOrderStatusPartiallyReceived: false,
		PurchaseOrderStatusReceived:          false,
		PurchaseOrderStatusCancelled:         false,
	} {
		order := PurchaseOrder{Status: status}
		assert.Equal(t, want, order.Editable(), "status %s", status)
	}
}

func TestComputeTotal(t *testing.T) {
	order := PurchaseOrder{Items: []PurchaseOrderItem{
		{Subtotal: decimal.RequireFromString("10.50")},
		{Subtotal: decimal.RequireFromString("4.25")},
	}}
	assert.True(t, order.ComputeTotal().Equal(decimal.RequireFromString("14.75")))

	empty := PurchaseOrder{}
	assert.True(t, empty.ComputeTotal().Equal(decimal.Zero))
}

func TestDeriveReceivingStatus(t *testing.T) {
	order := PurchaseOrder{
		Status: PurchaseOrderStatusPending,
		Items: []PurchaseOrderItem{
			{Quantity: 10, ReceivedQuantity: 0},
			{Quantity: 5, ReceivedQuantity: 0},
		},
	}
	assert.Equal(t, PurchaseOrderStatusPending, order.DeriveReceivingStatus(),
		"nothing received keeps the current status")

	order.Items[0].ReceivedQuantity = 4
	assert.Equal(t, PurchaseOrderStatusPartiallyReceived, order.DeriveReceivingStatus())

	order.Items[0].ReceivedQuantity = 10
	order.Items[1].ReceivedQuantity = 5
	assert.Equal(t, PurchaseOrderStatusReceived, order.DeriveReceivingStatus())
}

func TestValidStatusTransition(t *testing.T) {
	allowed := [][2]string{
		{PurchaseOrderStatusDraft, PurchaseOrderStatusPending},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusCancelled},
		{PurchaseOrderStatusPending, PurchaseOrderStatusPartiallyReceived},
		{PurchaseOrderStatusPending, PurchaseOrderStatusReceived},
		{PurchaseOrderStatusPending, PurchaseOrderStatusCancelled},
		{PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusReceived},
	}
	for _, pair := range allowed {
		assert.True(t, ValidStatusTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	denied := [][2]string{
		{PurchaseOrderStatusReceived, PurchaseOrderStatusPending},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusDraft},
		{PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusCancelled},
		{PurchaseOrderStatusPending, PurchaseOrderStatusDraft},
	}
	for _, pair := range denied {
		assert.False(t, ValidStatusTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}
