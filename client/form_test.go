package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFetcher(options ...Option) FetchFunc {
	return func(_ context.Context, _ string, _ int) (OptionPage, error) {
		return OptionPage{Options: options}, nil
	}
}

func TestEnterAdvancesThroughTextFields(t *testing.T) {
	flow := NewFormFlow([]*Field{
		{Name: "name", Kind: FieldText},
		{Name: "code", Kind: FieldText},
		{Name: "notes", Kind: FieldMultiline},
	}, nil, nil)
	ctx := context.Background()

	assert.Equal(t, "name", flow.Focused().Name)
	assert.Equal(t, ActionAdvance, flow.EnterPressed(ctx, false))
	assert.Equal(t, "code", flow.Focused().Name)
	assert.Equal(t, ActionAdvance, flow.EnterPressed(ctx, false))
	assert.Equal(t, "notes", flow.Focused().Name)
}

func TestShiftEnterInsertsNewlineWithoutAdvancing(t *testing.T) {
	notes := &Field{Name: "notes", Kind: FieldMultiline, Value: "line one"}
	flow := NewFormFlow([]*Field{notes, {Name: "other", Kind: FieldText}}, nil, nil)
	ctx := context.Background()

	assert.Equal(t, ActionNewline, flow.EnterPressed(ctx, true))
	assert.Equal(t, "line one\n", notes.Value)
	assert.Equal(t, "notes", flow.Focused().Name, "focus stays put")
}

func TestSelectorFieldOpensFirstThenAdvances(t *testing.T) {
	selector := NewSelector(lookupFetcher(Option{ID: 1, Label: "Acme"}))
	flow := NewFormFlow([]*Field{
		{Name: "supplier", Kind: FieldSelector, Selector: selector},
		{Name: "notes", Kind: FieldText},
	}, nil, nil)
	ctx := context.Background()

	assert.Equal(t, ActionOpenSelector, flow.EnterPressed(ctx, false))
	assert.Equal(t, PhaseOpen, selector.Phase())
	assert.Equal(t, "supplier", flow.Focused().Name)

	// While the dropdown is open, Enter belongs to the dropdown.
	assert.Equal(t, ActionNone, flow.EnterPressed(ctx, false))

	require.True(t, selector.Select(1))
	assert.True(t, selector.Visited())

	assert.Equal(t, ActionAdvance, flow.EnterPressed(ctx, false))
	assert.Equal(t, "notes", flow.Focused().Name)
}

func TestEnterOnLastFieldSubmits(t *testing.T) {
	submitted := 0
	flow := NewFormFlow([]*Field{
		{Name: "name", Kind: FieldText},
	}, func() bool { return true }, func() { submitted++ })
	ctx := context.Background()

	assert.Equal(t, ActionSubmit, flow.EnterPressed(ctx, false))
	assert.Equal(t, 1, submitted)
}

func TestDisabledSubmitFallsBackToNative(t *testing.T) {
	submitted := 0
	flow := NewFormFlow([]*Field{
		{Name: "name", Kind: FieldText},
	}, func() bool { return false }, func() { submitted++ })
	ctx := context.Background()

	assert.Equal(t, ActionNativeSubmit, flow.EnterPressed(ctx, false))
	assert.Equal(t, 0, submitted, "the guard keeps the handler from firing")
}

func TestTrailingToggleOnSubmits(t *testing.T) {
	submitted := 0
	flow := NewFormFlow([]*Field{
		{Name: "name", Kind: FieldText},
		{Name: "submit_now", Kind: FieldToggle},
	}, func() bool { return true }, func() { submitted++ })

	assert.Equal(t, ActionSubmit, flow.SetToggle("submit_now", true))
	assert.Equal(t, 1, submitted)

	assert.Equal(t, ActionNone, flow.SetToggle("submit_now", true), "setting an already-on toggle is not a transition")
	assert.Equal(t, 1, submitted)

	assert.Equal(t, ActionNone, flow.SetToggle("submit_now", false), "switching off never submits")
	assert.Equal(t, ActionSubmit, flow.SetToggle("submit_now", true), "every off to on transition submits")
	assert.Equal(t, 2, submitted)
}

func TestNonTrailingToggleDoesNotSubmit(t *testing.T) {
	submitted := 0
	flow := NewFormFlow([]*Field{
		{Name: "is_active", Kind: FieldToggle},
		{Name: "name", Kind: FieldText},
	}, func() bool { return true }, func() { submitted++ })

	flow.SetToggle("is_active", false)
	assert.Equal(t, ActionNone, flow.SetToggle("is_active", true))
	assert.Equal(t, 0, submitted)
}

func TestSupplierChangeClearsItemRows(t *testing.T) {
	supplier := NewSelector(lookupFetcher(
		Option{ID: 1, Label: "Acme"},
		Option{ID: 2, Label: "Globex"},
	))
	ctx := context.Background()
	supplier.Open(ctx)

	form := NewOrderForm(supplier)
	require.True(t, form.SelectSupplier(1))

	form.Items[0] = ItemRow{ProductID: 11, Quantity: 3, UnitPrice: "5.00"}
	form.AddItem()
	form.Items[1] = ItemRow{ProductID: 12, Quantity: 1, UnitPrice: "9.50"}
	require.Len(t, form.Items, 2)

	supplier.Open(ctx)
	require.True(t, form.SelectSupplier(2))

	require.Len(t, form.Items, 1, "supplier change resets the lines")
	assert.Equal(t, ItemRow{}, form.Items[0])
}

func TestReselectingSameSupplierKeepsItemRows(t *testing.T) {
	supplier := NewSelector(lookupFetcher(Option{ID: 1, Label: "Acme"}))
	ctx := context.Background()
	supplier.Open(ctx)

	form := NewOrderForm(supplier)
	require.True(t, form.SelectSupplier(1))
	form.Items[0] = ItemRow{ProductID: 11, Quantity: 3, UnitPrice: "5.00"}

	supplier.Open(ctx)
	require.True(t, form.SelectSupplier(1))

	require.Len(t, form.Items, 1)
	assert.Equal(t, uint(11), form.Items[0].ProductID, "same supplier keeps the lines")
}
