package core

// Input accumulates events between frames. Level state (IsKeyDown, MouseDown)
// persists; edge state (pressed/released, typed chars, scroll) lives for one
// frame and is cleared by EndFrame.
type Input struct {
	keys           map[Key]bool
	pressedKeys    map[Key]bool
	mouseX, mouseY float64
	buttons        [mouseButtonCount]bool
	pressed        [mouseButtonCount]bool
	released       [mouseButtonCount]bool
	chars          []rune
	scrollX        float64
	scrollY        float64
	mods           Mod
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, pressedKeys: map[Key]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && (!in.keys[e.Key] || e.Repeat) {
			in.pressedKeys[e.Key] = true
		}
		in.keys[e.Key] = e.Down
		in.mods = e.Mods
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if e.Button < 0 || e.Button >= mouseButtonCount {
			return
		}
		if e.Down && !in.buttons[e.Button] {
			in.pressed[e.Button] = true
		}
		if !e.Down && in.buttons[e.Button] {
			in.released[e.Button] = true
		}
		in.buttons[e.Button] = e.Down
	case EventChar:
		in.chars = append(in.chars, e.Rune)
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	}
}

// EndFrame drops the per-frame edge state. Call once after rendering.
func (in *Input) EndFrame() {
	for k := range in.pressedKeys {
		delete(in.pressedKeys, k)
	}
	in.pressed = [mouseButtonCount]bool{}
	in.released = [mouseButtonCount]bool{}
	in.chars = in.chars[:0]
	in.scrollX, in.scrollY = 0, 0
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) KeyPressed(k Key) bool     { return in.pressedKeys[k] }
func (in *Input) Mods() Mod                 { return in.mods }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
func (in *Input) MouseDown(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && in.buttons[b]
}
func (in *Input) MousePressed(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && in.pressed[b]
}
func (in *Input) MouseReleased(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && in.released[b]
}
func (in *Input) Chars() []rune              { return in.chars }
func (in *Input) Scroll() (float64, float64) { return in.scrollX, in.scrollY }
