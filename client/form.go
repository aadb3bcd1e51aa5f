package client

import "context"

// FieldKind distinguishes how a form field reacts to the Enter key.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldMultiline
	FieldSelector
	FieldToggle
)

// Field is one entry in a form's focus order.
type Field struct {
	Name     string
	Kind     FieldKind
	Selector *Selector
	Value    string
	On       bool
}

// Action is what the form flow decided in response to a key press.
type Action int

const (
	ActionNone Action = iota
	ActionAdvance
	ActionOpenSelector
	ActionNewline
	ActionSubmit
	ActionNativeSubmit
)

// FormFlow moves focus through an ordered list of fields. Enter
// advances to the next field; on the last field it submits. Selector
// fields intercept the first Enter to open their dropdown and only
// advance once the field has been visited.
type FormFlow struct {
	fields []*Field
	focus  int

	submitEnabled func() bool
	onSubmit      func()
}

// NewFormFlow builds a flow over fields in focus order. submitEnabled
// guards submission (a save already in flight disables it); onSubmit
// runs when the flow submits.
func NewFormFlow(fields []*Field, submitEnabled func() bool, onSubmit func()) *FormFlow {
	return &FormFlow{
		fields:        fields,
		submitEnabled: submitEnabled,
		onSubmit:      onSubmit,
	}
}

// Focused returns the field currently holding focus.
func (f *FormFlow) Focused() *Field {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	return f.fields[f.focus]
}

// FocusIndex returns the position of the focused field.
func (f *FormFlow) FocusIndex() int {
	return f.focus
}

// FieldByName finds a field by its name, or nil.
func (f *FormFlow) FieldByName(name string) *Field {
	for _, field := range f.fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// EnterPressed handles Enter on the focused field. shift reports
// whether Shift was held. The returned Action tells the caller what
// happened; submission callbacks have already run when it returns.
func (f *FormFlow) EnterPressed(ctx context.Context, shift bool) Action {
	field := f.Focused()
	if field == nil {
		return ActionNone
	}

	if field.Kind == FieldMultiline && shift {
		field.Value += "\n"
		return ActionNewline
	}

	if field.Kind == FieldSelector && field.Selector != nil {
		switch field.Selector.Phase() {
		case PhaseClosed:
			field.Selector.Open(ctx)
			return ActionOpenSelector
		case PhaseOpen:
			// Enter inside an open dropdown is the selection key,
			// handled by the dropdown itself.
			return ActionNone
		}
	}

	if f.focus == len(f.fields)-1 {
		return f.submit()
	}

	f.focus++
	return ActionAdvance
}

// SetToggle flips a toggle field. Switching the trailing toggle on
// submits the form, the same as Enter on the submit control. Switching
// it off never submits.
func (f *FormFlow) SetToggle(name string, on bool) Action {
	field := f.FieldByName(name)
	if field == nil || field.Kind != FieldToggle {
		return ActionNone
	}
	was := field.On
	field.On = on

	if on && !was && f.trailingField() == field {
		return f.submit()
	}
	return ActionNone
}

// submit runs the submission guard. A disabled submit falls back to a
// native form submission request so built-in validation still fires.
func (f *FormFlow) submit() Action {
	if f.submitEnabled != nil && !f.submitEnabled() {
		return ActionNativeSubmit
	}
	if f.onSubmit != nil {
		f.onSubmit()
	}
	return ActionSubmit
}

func (f *FormFlow) trailingField() *Field {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[len(f.fields)-1]
}

// ItemRow is one order line in the purchase order form.
type ItemRow struct {
	ProductID uint
	Quantity  int
	UnitPrice string
}

// OrderForm wires the purchase order form's supplier selector to its
// item rows. Item products are scoped to the chosen supplier, so
// switching supplier invalidates every line.
type OrderForm struct {
	Supplier *Selector
	Items    []ItemRow
}

// NewOrderForm returns a form with a single empty item row.
func NewOrderForm(supplier *Selector) *OrderForm {
	return &OrderForm{
		Supplier: supplier,
		Items:    []ItemRow{{}},
	}
}

// SelectSupplier commits a supplier choice. Changing to a different
// supplier resets the item rows back to a single empty row.
func (o *OrderForm) SelectSupplier(id uint) bool {
	previous := o.Supplier.Selected()
	if !o.Supplier.Select(id) {
		return false
	}
	if previous == nil || previous.ID != id {
		o.Items = []ItemRow{{}}
	}
	return true
}

// AddItem appends an empty item row.
func (o *OrderForm) AddItem() {
	o.Items = append(o.Items, ItemRow{})
}
