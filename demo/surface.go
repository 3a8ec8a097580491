package demo

import (
	"github.com/hubastard/grove-toolkit/engine/colors"
	"github.com/hubastard/grove-toolkit/engine/ui"
)

// Surface is what a pass draws on. Editing controls return true when the
// user changed the value behind the pointer this frame. *ui.Ctx implements it.
type Surface interface {
	Heading(text string)
	Label(text string)
	Separator()
	Button(text string) bool
	Row(id string, fn func())
	Collapsing(title string, fn func())
	Spinner()

	Checkbox(label string, v *bool) bool
	Radio(label string, selected bool) bool
	Selectable(label string, selected bool) bool
	ComboBox(label, selected string, options []string, index *int) bool
	DragValue(v *float32, speed, min, max float32) bool
	Slider(v *float32, min, max float32, suffix string) bool
	ProgressBar(fraction float32, animate bool) (hovered bool)
	ColorEdit(c *colors.Color) bool
	TextEdit(s *string, hint string) bool

	SetTheme(t ui.Theme)
}

var _ Surface = (*ui.Ctx)(nil)
