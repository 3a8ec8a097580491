package demo

import (
	"fmt"
	"strconv"

	"github.com/hubastard/grove-toolkit/engine/ui"
)

const (
	Title        = "Grove UI Toolkit Demo"
	ThemePrompt  = "Dark mode or Light mode ?!"
	DarkButton   = "Dark mode!"
	LightButton  = "Light mode!"
	HiddenTitle  = "Click to see what is hidden!"
	SpinnerLabel = "It's a spinner!"
)

// Frame reports what one pass did.
type Frame struct {
	Number   uint64
	Animated bool // animating value the display rendered with
	Hovered  bool // hover observation committed at the end of the pass
	Changed  bool // some field other than animating changed
	// RepaintRequested asks the host for another pass right away.
	RepaintRequested bool
}

// Synchronizer presents a fixed list of bindings once per frame and commits
// user edits back into the Store.
type Synchronizer struct {
	bindings []Binding
	rowIDs   []string
	frame    uint64
}

// NewSynchronizer validates bindings; the order given is the evaluation
// order of every pass.
func NewSynchronizer(bindings []Binding) (*Synchronizer, error) {
	s := &Synchronizer{
		bindings: make([]Binding, len(bindings)),
		rowIDs:   make([]string, len(bindings)),
	}
	for i, b := range bindings {
		if err := b.validate(); err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		s.bindings[i] = b
		s.rowIDs[i] = "binding-" + strconv.Itoa(i)
	}
	return s, nil
}

func (s *Synchronizer) Bindings() []Binding { return s.bindings }

// Pass runs one frame. Bindings see writes made by bindings evaluated
// before them in the same pass. The hover observation of the display is
// held back and committed to animating only after every binding ran, so
// the display animates from the next pass on.
func (s *Synchronizer) Pass(surf Surface, st *Store) Frame {
	s.frame++
	before := st.Snapshot()
	f := Frame{Number: s.frame, Animated: before.Animating}

	surf.Heading(Title)
	surf.Separator()
	surf.Row("theme", func() {
		surf.Label(ThemePrompt)
		if surf.Button(DarkButton) {
			surf.SetTheme(ui.ThemeDark)
		}
		if surf.Button(LightButton) {
			surf.SetTheme(ui.ThemeLight)
		}
	})

	pending, observed := false, false
	for i := range s.bindings {
		b := &s.bindings[i]
		surf.Row(s.rowIDs[i], func() {
			if b.Caption != "" {
				surf.Label(b.Caption)
			}
			if hovered, ok := present(surf, st, b, f.Animated); ok {
				pending = pending || hovered
				observed = true
			}
		})
	}

	surf.Collapsing(HiddenTitle, func() {
		surf.Row("spinner", func() {
			surf.Label(SpinnerLabel)
			surf.Spinner()
		})
	})
	surf.Separator()

	// write phase
	after := st.Snapshot()
	after.Animating = before.Animating
	f.Changed = after != before
	if observed {
		f.Hovered = pending
		st.SetAnimating(pending)
	}
	flipped := st.Animating() != f.Animated
	f.RepaintRequested = f.Animated || f.Changed || flipped
	return f
}

// present draws one binding against the current Store value and writes
// back what the user edited. ok is set for displays, with their hover.
func present(surf Surface, st *Store, b *Binding, animated bool) (hovered, ok bool) {
	switch b.Kind {
	case KindToggle:
		v := st.Flag()
		if surf.Checkbox(b.Label, &v) {
			st.SetFlag(v)
		}
	case KindSlider:
		v := st.Magnitude()
		if surf.Slider(&v, b.Min, b.Max, b.Suffix) {
			st.SetMagnitude(v)
		}
	case KindEditor:
		v := st.Magnitude()
		if surf.DragValue(&v, b.Speed, b.Min, b.Max) {
			st.SetMagnitude(v)
		}
	case KindDisplay:
		return surf.ProgressBar(st.Fraction(), animated), true
	case KindSelector:
		presentChoice(surf, st, b)
	case KindColorEditor:
		c := st.Tint()
		if surf.ColorEdit(&c) {
			st.SetTint(c)
		}
	case KindTextEditor:
		t := st.Text()
		if surf.TextEdit(&t, b.Hint) {
			st.SetText(t)
		}
	}
	return false, false
}

// presentChoice overwrites choice with whatever option the user picked.
func presentChoice(surf Surface, st *Store, b *Binding) {
	switch b.Style {
	case StyleRadio:
		for _, c := range Choices() {
			if surf.Radio(c.String(), st.Selected(c)) {
				st.SetChoice(c)
			}
		}
	case StyleSelectable:
		for _, c := range Choices() {
			if surf.Selectable(c.String(), st.Selected(c)) {
				st.SetChoice(c)
			}
		}
	case StyleCombo:
		idx := int(st.Choice())
		if surf.ComboBox(b.Label, st.Choice().String(), choiceNames, &idx) && idx >= 0 {
			st.SetChoice(Choice(min(idx, int(Third))))
		}
	}
}
