// Package demo holds the showcase state and the per-frame pass that binds
// it to the widgets.
package demo

import (
	"math"

	"github.com/hubastard/grove-toolkit/engine/colors"
)

type Choice uint8

const (
	First Choice = iota
	Second
	Third
)

var choiceNames = []string{"First", "Second", "Third"}

func (c Choice) String() string { return choiceNames[c.clamp()] }

func (c Choice) clamp() Choice { return min(c, Third) }

// Choices lists every Choice in presentation order.
func Choices() []Choice { return []Choice{First, Second, Third} }

const (
	MagnitudeMin float32 = 0
	MagnitudeMax float32 = 360
)

// ClampMagnitude maps v into [MagnitudeMin, MagnitudeMax]. NaN becomes 0.
func ClampMagnitude(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return max(MagnitudeMin, min(v, MagnitudeMax))
}

// Store is the one record every binding reads and writes. Fields have no
// invariant between them.
type Store struct {
	flag      bool
	choice    Choice
	magnitude float32
	tint      colors.Color
	animating bool
	text      string
}

func NewStore() *Store {
	return &Store{
		choice:    First,
		magnitude: 42,
		tint:      colors.LightBlue.Multiply(0.5),
		animating: true,
	}
}

func (s *Store) Flag() bool         { return s.flag }
func (s *Store) Choice() Choice     { return s.choice }
func (s *Store) Magnitude() float32 { return s.magnitude }
func (s *Store) Tint() colors.Color { return s.tint }
func (s *Store) Animating() bool    { return s.animating }
func (s *Store) Text() string       { return s.text }

func (s *Store) SetFlag(v bool) { s.flag = v }

// SetChoice stores c; values past Third are stored as Third.
func (s *Store) SetChoice(c Choice)     { s.choice = c.clamp() }
func (s *Store) SetMagnitude(v float32) { s.magnitude = ClampMagnitude(v) }
func (s *Store) SetTint(c colors.Color) { s.tint = c }
func (s *Store) SetAnimating(v bool)    { s.animating = v }
func (s *Store) SetText(v string)       { s.text = v }
func (s *Store) ToggleFlag()            { s.flag = !s.flag }
func (s *Store) Selected(c Choice) bool { return s.choice == c }

// Fraction is magnitude over the domain width, in [0, 1].
func (s *Store) Fraction() float32 { return s.magnitude / MagnitudeMax }

// State is a value copy of a Store.
type State struct {
	Flag      bool
	Choice    Choice
	Magnitude float32
	Tint      colors.Color
	Animating bool
	Text      string
}

func (s *Store) Snapshot() State {
	return State{
		Flag:      s.flag,
		Choice:    s.choice,
		Magnitude: s.magnitude,
		Tint:      s.tint,
		Animating: s.animating,
		Text:      s.text,
	}
}
