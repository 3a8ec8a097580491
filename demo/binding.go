package demo

import (
	"errors"
	"fmt"
)

// Kind tags which control a Binding presents.
type Kind uint8

const (
	KindToggle Kind = iota
	KindEditor
	KindSlider
	KindDisplay
	KindSelector
	KindColorEditor
	KindTextEditor
)

var kindNames = [...]string{"toggle", "editor", "slider", "display", "selector", "color editor", "text editor"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Field names the Store field a Binding targets.
type Field uint8

const (
	FieldFlag Field = iota
	FieldChoice
	FieldMagnitude
	FieldTint
	FieldText
)

var fieldNames = [...]string{"flag", "choice", "magnitude", "tint", "text"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", f)
}

// Style picks one of the three presentations of a selector.
type Style uint8

const (
	StyleRadio Style = iota
	StyleSelectable
	StyleCombo
)

// Binding pairs one Store field with one control. Only the options the
// Kind uses are read.
type Binding struct {
	Kind    Kind
	Field   Field
	Caption string // shown left of the control

	Label  string  // toggle text, combo label
	Hint   string  // text editor placeholder
	Suffix string  // slider unit
	Speed  float32 // editor units per pixel
	Min    float32
	Max    float32
	Style  Style
}

// DefaultBindings returns the showcase controls in presentation order.
func DefaultBindings() []Binding {
	return []Binding{
		{Kind: KindTextEditor, Field: FieldText, Hint: "Write something here"},
		{Kind: KindSlider, Field: FieldMagnitude, Caption: "Slider:", Min: MagnitudeMin, Max: MagnitudeMax, Suffix: "°"},
		{Kind: KindEditor, Field: FieldMagnitude, Caption: "DragValue:", Speed: 1, Min: MagnitudeMin, Max: MagnitudeMax},
		{Kind: KindDisplay, Field: FieldMagnitude, Caption: "ProgressBar:"},
		{Kind: KindColorEditor, Field: FieldTint, Caption: "Color picker:"},
		{Kind: KindToggle, Field: FieldFlag, Caption: "Checkbox:", Label: "Checkbox"},
		{Kind: KindSelector, Field: FieldChoice, Caption: "RadioButton:", Style: StyleRadio},
		{Kind: KindSelector, Field: FieldChoice, Caption: "SelectableLabel:", Style: StyleSelectable},
		{Kind: KindSelector, Field: FieldChoice, Caption: "ComboBox:", Style: StyleCombo, Label: "Take your pick"},
	}
}

var ErrInvalidBinding = errors.New("invalid binding")

var kindField = [...]Field{
	KindToggle:      FieldFlag,
	KindEditor:      FieldMagnitude,
	KindSlider:      FieldMagnitude,
	KindDisplay:     FieldMagnitude,
	KindSelector:    FieldChoice,
	KindColorEditor: FieldTint,
	KindTextEditor:  FieldText,
}

func (b Binding) validate() error {
	if int(b.Kind) >= len(kindField) {
		return fmt.Errorf("unknown kind %s: %w", b.Kind, ErrInvalidBinding)
	}
	if want := kindField[b.Kind]; b.Field != want {
		return fmt.Errorf("%s cannot target %s, only %s: %w", b.Kind, b.Field, want, ErrInvalidBinding)
	}
	switch b.Kind {
	case KindEditor, KindSlider:
		if b.Min >= b.Max || b.Min < MagnitudeMin || b.Max > MagnitudeMax {
			return fmt.Errorf("%s range [%g, %g] outside [%g, %g]: %w",
				b.Kind, b.Min, b.Max, MagnitudeMin, MagnitudeMax, ErrInvalidBinding)
		}
		if b.Kind == KindEditor && b.Speed <= 0 {
			return fmt.Errorf("editor speed %g must be positive: %w", b.Speed, ErrInvalidBinding)
		}
	case KindSelector:
		if b.Style > StyleCombo {
			return fmt.Errorf("unknown selector style %d: %w", b.Style, ErrInvalidBinding)
		}
	}
	return nil
}
