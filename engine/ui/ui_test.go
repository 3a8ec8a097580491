package ui

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/grove-toolkit/engine/colors"
)

type drawnText struct {
	X, Y float32
	S    string
}

// fakeRenderer measures every rune as half the font size wide.
type fakeRenderer struct {
	texts []drawnText
	quads int
}

func (f *fakeRenderer) DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32) {
	f.quads++
}

func (f *fakeRenderer) DrawText(x, y float32, text string, size float32, color colors.Color) {
	f.texts = append(f.texts, drawnText{x, y, strings.Clone(text)})
}

func (f *fakeRenderer) Measure(text string, size float32) (float32, float32) {
	return float32(utf8.RuneCountInString(text)) * size * 0.5, size
}

func (f *fakeRenderer) drew(s string) bool {
	return slices.ContainsFunc(f.texts, func(t drawnText) bool { return t.S == s })
}

func (f *fakeRenderer) index(s string) int {
	return slices.IndexFunc(f.texts, func(t drawnText) bool { return t.S == s })
}

func newTestCtx() (*Ctx, *fakeRenderer) {
	r := &fakeRenderer{}
	c := New(DefaultStyle(), 64)
	c.R = r
	return c, r
}

// frame runs one UI pass over an 800x600 area and returns what was drawn.
func frame(c *Ctx, r *fakeRenderer, in Input, fn func()) *fakeRenderer {
	r.texts = r.texts[:0]
	r.quads = 0
	c.BeginFrame(&in, 0, 0, 800, 600)
	fn()
	c.EndFrame()
	return r
}

func hover(x, y float32) Input { return Input{MouseX: x, MouseY: y} }
func press(x, y float32) Input {
	return Input{MouseX: x, MouseY: y, MouseDown: true, MousePressed: true}
}
func hold(x, y float32) Input    { return Input{MouseX: x, MouseY: y, MouseDown: true} }
func release(x, y float32) Input { return Input{MouseX: x, MouseY: y, MouseReleased: true} }

// click presses and releases at (x, y) over two frames and reports the
// result of fn on each.
func click(c *Ctx, r *fakeRenderer, x, y float32, fn func() bool) (onPress, onRelease bool) {
	frame(c, r, press(x, y), func() { onPress = fn() })
	frame(c, r, release(x, y), func() { onRelease = fn() })
	return
}

func TestButtonClicksOnRelease(t *testing.T) {
	c, r := newTestCtx()
	onPress, onRelease := click(c, r, 20, 20, func() bool { return c.Button("OK") })
	if onPress || !onRelease {
		t.Fatalf("press=%v release=%v, want false,true", onPress, onRelease)
	}
	var again bool
	frame(c, r, hover(20, 20), func() { again = c.Button("OK") })
	if again {
		t.Fatal("hover after click reported a click")
	}
}

func TestButtonReleaseOutsideIsNotAClick(t *testing.T) {
	c, r := newTestCtx()
	var got bool
	frame(c, r, press(20, 20), func() { c.Button("OK") })
	frame(c, r, release(400, 400), func() { got = c.Button("OK") })
	if got {
		t.Fatal("release outside the button counted as a click")
	}
}

func TestCheckboxToggles(t *testing.T) {
	c, r := newTestCtx()
	v := false
	_, changed := click(c, r, 16, 20, func() bool { return c.Checkbox("Checkbox", &v) })
	if !changed || !v {
		t.Fatalf("changed=%v v=%v, want true,true", changed, v)
	}
	click(c, r, 16, 20, func() bool { return c.Checkbox("Checkbox", &v) })
	if v {
		t.Fatal("second click did not clear the checkbox")
	}
}

func TestRadioAndSelectableReportClicks(t *testing.T) {
	c, r := newTestCtx()
	_, got := click(c, r, 16, 20, func() bool { return c.Radio("First", false) })
	if !got {
		t.Fatal("radio click not reported")
	}
	_, got = click(c, r, 16, 20, func() bool { return c.Selectable("First", true) })
	if !got {
		t.Fatal("selectable click not reported")
	}
}

func TestRowPlacesChildrenLeftToRight(t *testing.T) {
	c, r := newTestCtx()
	frame(c, r, hover(0, 0), func() {
		c.Row("buttons", func() {
			c.Button("A")
			c.Button("B")
		})
		c.Label("below")
	})
	// "A" is 9 wide, so its button is 25 wide plus 8 spacing.
	want := []drawnText{
		{20, 16, "A"},
		{53, 16, "B"},
		{12, 50, "below"},
	}
	if diff := cmp.Diff(want, r.texts); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestSliderMapsTrackPosition(t *testing.T) {
	c, r := newTestCtx()
	v := float32(42)
	var changed bool
	frame(c, r, press(112, 20), func() { changed = c.Slider(&v, 0, 360, "°") })
	if !changed || v != 180 {
		t.Fatalf("changed=%v v=%v, want true,180", changed, v)
	}
	if !r.drew("180°") {
		t.Fatalf("value label missing, drew %v", r.texts)
	}
	frame(c, r, hold(500, 20), func() { c.Slider(&v, 0, 360, "°") })
	if v != 360 {
		t.Fatalf("v=%v after dragging past the end, want 360", v)
	}
	frame(c, r, release(500, 20), func() { changed = c.Slider(&v, 0, 360, "°") })
	frame(c, r, hover(12, 20), func() { changed = c.Slider(&v, 0, 360, "°") })
	if changed || v != 360 {
		t.Fatalf("hover changed the value to %v", v)
	}
}

func TestDragValueFollowsMouseDelta(t *testing.T) {
	c, r := newTestCtx()
	v := float32(42)
	var changed bool
	frame(c, r, press(20, 20), func() { changed = c.DragValue(&v, 1, 0, 360) })
	if changed {
		t.Fatal("press alone changed the value")
	}
	frame(c, r, hold(30, 20), func() { changed = c.DragValue(&v, 1, 0, 360) })
	if !changed || v != 52 {
		t.Fatalf("changed=%v v=%v, want true,52", changed, v)
	}
	frame(c, r, hold(1030, 20), func() { c.DragValue(&v, 1, 0, 360) })
	if v != 360 {
		t.Fatalf("v=%v, want clamped to 360", v)
	}
}

func TestProgressBar(t *testing.T) {
	c, r := newTestCtx()
	var hovered bool
	frame(c, r, hover(20, 20), func() { hovered = c.ProgressBar(0.25, false) })
	if !hovered {
		t.Fatal("hover not reported")
	}
	if c.RepaintRequested() {
		t.Fatal("static bar requested a repaint")
	}
	if !r.drew("25%") {
		t.Fatalf("percentage missing, drew %v", r.texts)
	}
	frame(c, r, hover(700, 500), func() { hovered = c.ProgressBar(0.25, true) })
	if hovered {
		t.Fatal("hover reported away from the bar")
	}
	if !c.RepaintRequested() {
		t.Fatal("animated bar did not request a repaint")
	}
}

var choiceNames = []string{"First", "Second", "Third"}

func TestComboBoxPicksFromPopup(t *testing.T) {
	c, r := newTestCtx()
	idx := 0
	combo := func() bool { return c.ComboBox("Take your pick", choiceNames[idx], choiceNames, &idx) }

	click(c, r, 20, 20, combo)
	if !r.drew("Third") {
		t.Fatalf("popup not shown after click, drew %v", r.texts)
	}
	if r.index("Third") < r.index("Take your pick") {
		t.Fatal("popup drawn below the base layer")
	}

	// Second option sits one row plus spacing below the first at y=46.
	_, changed := click(c, r, 30, 90, combo)
	if !changed || idx != 1 {
		t.Fatalf("changed=%v idx=%d, want true,1", changed, idx)
	}
	frame(c, r, hover(0, 0), func() { combo() })
	if r.drew("Third") {
		t.Fatal("popup still open after picking")
	}
}

func TestPopupClosesOnOutsideClickAndBlocksWidgetsBelow(t *testing.T) {
	c, r := newTestCtx()
	idx := 2
	var button bool
	ui := func() bool {
		c.ComboBox("pick", choiceNames[idx], choiceNames, &idx)
		if c.Button("Under") {
			button = true
		}
		return false
	}
	click(c, r, 20, 20, ui)
	// "Under" sits at y=80, behind the second option.
	click(c, r, 30, 90, ui)
	if button {
		t.Fatal("button under the popup received the click")
	}
	if idx != 1 {
		t.Fatalf("idx=%d, want second option picked", idx)
	}

	click(c, r, 20, 20, ui)
	frame(c, r, press(700, 500), func() { ui() })
	frame(c, r, hover(0, 0), func() { ui() })
	if r.drew("Third") {
		t.Fatal("popup still open after clicking outside")
	}
}

func TestColorEditPopupSliders(t *testing.T) {
	c, r := newTestCtx()
	col := colors.Color{0.2, 0.4, 0.6, 1}
	click(c, r, 20, 20, func() bool { return c.ColorEdit(&col) })
	for _, want := range []string{"R", "G", "B", "A", "#336699FF"} {
		if !r.drew(want) {
			t.Fatalf("popup missing %q, drew %v", want, r.texts)
		}
	}
	// Popup content starts at (18, 46); the R slider track runs from
	// x=35 to 235 after its 9px label.
	var changed bool
	frame(c, r, press(135, 59), func() { changed = c.ColorEdit(&col) })
	if !changed || col[0] != 0.5 {
		t.Fatalf("changed=%v col=%v, want red channel at 0.5", changed, col)
	}
}

func TestTextEditFocusAndTyping(t *testing.T) {
	c, r := newTestCtx()
	s := ""
	edit := func() bool { return c.TextEdit(&s, "Write something here") }

	frame(c, r, hover(0, 0), func() { edit() })
	if !r.drew("Write something here") {
		t.Fatal("hint not shown for empty text")
	}
	frame(c, r, Input{Chars: []rune("lost")}, func() { edit() })
	if s != "" {
		t.Fatalf("unfocused edit accepted input: %q", s)
	}

	frame(c, r, press(20, 20), func() { edit() })
	var changed bool
	frame(c, r, Input{MouseX: 20, MouseY: 20, MouseReleased: true, Chars: []rune("hé")}, func() { changed = edit() })
	if !changed || s != "hé" {
		t.Fatalf("changed=%v s=%q, want true,hé", changed, s)
	}
	frame(c, r, Input{Backspace: true}, func() { edit() })
	if s != "h" {
		t.Fatalf("backspace left %q", s)
	}

	frame(c, r, press(500, 500), func() { edit() })
	frame(c, r, Input{Chars: []rune("x")}, func() { changed = edit() })
	if changed || s != "h" {
		t.Fatalf("edit kept focus after clicking elsewhere: %q", s)
	}
}

func TestCollapsingShowsContentWhenOpen(t *testing.T) {
	c, r := newTestCtx()
	body := func() bool {
		c.Collapsing("Click to see what is hidden!", func() { c.Label("inside") })
		return false
	}
	frame(c, r, hover(0, 0), func() { body() })
	if r.drew("inside") {
		t.Fatal("closed section drew its content")
	}
	click(c, r, 20, 20, body)
	if !r.drew("inside") {
		t.Fatal("open section did not draw its content")
	}
	if !r.drew("- Click to see what is hidden!") {
		t.Fatalf("header marker not updated, drew %v", r.texts)
	}
}

func TestSpinnerRequestsRepaint(t *testing.T) {
	c, r := newTestCtx()
	frame(c, r, hover(0, 0), func() { c.Label("idle") })
	if c.RepaintRequested() {
		t.Fatal("idle frame requested a repaint")
	}
	frame(c, r, hover(0, 0), c.Spinner)
	if !c.RepaintRequested() {
		t.Fatal("spinner did not request a repaint")
	}
}

func TestIDScopes(t *testing.T) {
	c, r := newTestCtx()
	var a, b, a2 ID
	frame(c, r, hover(0, 0), func() {
		c.Row("a", func() { a = c.ID("x") })
		c.Row("b", func() { b = c.ID("x") })
		c.Row("a", func() { a2 = c.ID("x") })
	})
	if a == b {
		t.Fatal("same label in different scopes collided")
	}
	if a != a2 {
		t.Fatal("same label in the same scope changed id")
	}
}

func TestSetVisualsIsIdempotent(t *testing.T) {
	c, _ := newTestCtx()
	if !c.Visuals().Dark {
		t.Fatal("context should start dark")
	}
	c.SetVisuals(LightVisuals())
	c.SetVisuals(LightVisuals())
	if diff := cmp.Diff(LightVisuals(), c.Visuals()); diff != "" {
		t.Fatalf("visuals mismatch (-want +got):\n%s", diff)
	}
}

func TestSetThemeSwapsVisuals(t *testing.T) {
	c, _ := newTestCtx()
	c.SetTheme(ThemeLight)
	if c.Theme() != ThemeLight || c.Visuals().Dark {
		t.Fatal("light theme not applied")
	}
	c.SetTheme(ThemeDark)
	c.SetTheme(ThemeDark)
	if diff := cmp.Diff(DarkVisuals(), c.Visuals()); diff != "" {
		t.Fatalf("visuals mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTheme(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"dark", ThemeDark, false},
		{"light", ThemeLight, false},
		{"solarized", ThemeDark, true},
	} {
		got, err := ParseTheme(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseTheme(%q) = %v, %v", tc.in, got, err)
		}
	}
}
