package ui

import (
	"fmt"

	"github.com/hubastard/grove-toolkit/engine/colors"
)

// Visuals is the colour theme the widgets draw with.
type Visuals struct {
	Dark bool

	Background colors.Color // window clear colour
	Popup      colors.Color
	ExtremeBg  colors.Color // text edits, progress tracks
	Stroke     colors.Color

	Text       colors.Color
	StrongText colors.Color
	WeakText   colors.Color

	Widget        colors.Color
	WidgetHovered colors.Color
	WidgetActive  colors.Color

	Selection     colors.Color
	SelectionText colors.Color
	Accent        colors.Color
}

func gray(v float32) colors.Color { return colors.Color{v, v, v, 1} }

func DarkVisuals() Visuals {
	return Visuals{
		Dark:          true,
		Background:    gray(0.106),
		Popup:         gray(0.153),
		ExtremeBg:     gray(0.039),
		Stroke:        gray(0.235),
		Text:          gray(0.549),
		StrongText:    gray(1),
		WeakText:      gray(0.353),
		Widget:        gray(0.235),
		WidgetHovered: gray(0.275),
		WidgetActive:  gray(0.216),
		Selection:     colors.Color{0, 0.361, 0.502, 1},
		SelectionText: colors.Color{0.753, 0.871, 1, 1},
		Accent:        colors.Color{0.353, 0.667, 1, 1},
	}
}

func LightVisuals() Visuals {
	return Visuals{
		Dark:          false,
		Background:    gray(0.973),
		Popup:         gray(0.973),
		ExtremeBg:     gray(1),
		Stroke:        gray(0.745),
		Text:          gray(0.314),
		StrongText:    gray(0),
		WeakText:      gray(0.549),
		Widget:        gray(0.902),
		WidgetHovered: gray(0.863),
		WidgetActive:  gray(0.784),
		Selection:     colors.Color{0.565, 0.820, 1, 1},
		SelectionText: colors.Color{0, 0.325, 0.490, 1},
		Accent:        colors.Color{0, 0.427, 1, 1},
	}
}

// Style holds the metrics, in pixels.
type Style struct {
	FontSize     float32
	HeadingSize  float32
	RowHeight    float32
	Spacing      float32
	Padding      float32
	ButtonPadX   float32
	Indent       float32
	Stroke       float32
	PopupPadding float32
	PopupWidth   float32

	SliderWidth   float32
	DragMinWidth  float32
	TextEditWidth float32
	SwatchWidth   float32
	ProgressWidth float32
}

func DefaultStyle() Style {
	return Style{
		FontSize:      18,
		HeadingSize:   26,
		RowHeight:     26,
		Spacing:       8,
		Padding:       12,
		ButtonPadX:    8,
		Indent:        18,
		Stroke:        1,
		PopupPadding:  6,
		PopupWidth:    320,
		SliderWidth:   200,
		DragMinWidth:  56,
		TextEditWidth: 260,
		SwatchWidth:   40,
		ProgressWidth: 240,
	}
}

// Scaled returns the style with every metric multiplied by f, so a larger
// font keeps widget proportions.
func (s Style) Scaled(f float32) Style {
	return Style{
		FontSize:      s.FontSize * f,
		HeadingSize:   s.HeadingSize * f,
		RowHeight:     s.RowHeight * f,
		Spacing:       s.Spacing * f,
		Padding:       s.Padding * f,
		ButtonPadX:    s.ButtonPadX * f,
		Indent:        s.Indent * f,
		Stroke:        s.Stroke,
		PopupPadding:  s.PopupPadding * f,
		PopupWidth:    s.PopupWidth * f,
		SliderWidth:   s.SliderWidth * f,
		DragMinWidth:  s.DragMinWidth * f,
		TextEditWidth: s.TextEditWidth * f,
		SwatchWidth:   s.SwatchWidth * f,
		ProgressWidth: s.ProgressWidth * f,
	}
}

type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme accepts "dark" or "light".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("unknown theme %q", s)
}

// Visuals returns the built-in set for t.
func (t Theme) Visuals() Visuals {
	if t == ThemeLight {
		return LightVisuals()
	}
	return DarkVisuals()
}

// SetTheme swaps the visuals for the built-in dark or light set.
func (c *Ctx) SetTheme(t Theme) { c.SetVisuals(t.Visuals()) }

func (c *Ctx) Theme() Theme {
	if c.visuals.Dark {
		return ThemeDark
	}
	return ThemeLight
}
