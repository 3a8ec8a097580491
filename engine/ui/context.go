package ui

import (
	"github.com/hubastard/grove-toolkit/engine/colors"
	"github.com/hubastard/grove-toolkit/engine/scratch"
)

// Renderer is what the toolkit draws through. text.Painter implements it on
// top of the 2D batcher.
type Renderer interface {
	// Draws a solid quad centered at (cx, cy) with w,h and color RGBA [0..1]
	DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32)
	// Draws text top-left at (x,y)
	DrawText(x, y float32, text string, size float32, color colors.Color)
	// Measures text (w,h) for a given font size
	Measure(text string, size float32) (w, h float32)
}

// Input is the per-frame input snapshot. Edge fields (Pressed, Released,
// Chars, key flags) are true for exactly one frame.
type Input struct {
	MouseX, MouseY float32
	MouseDown      bool
	MousePressed   bool
	MouseReleased  bool

	Chars     []rune
	Backspace bool
	Enter     bool
	Escape    bool

	Time float64 // seconds; drives animations
}

// ===== Immediate-UI context =====

type Ctx struct {
	R Renderer
	I *Input

	visuals Visuals
	style   Style

	// Buffers reused every frame
	cmds    []cmd
	overlay []cmd // popups, drawn after cmds
	target  *[]cmd
	layouts []layout
	scopes  []idScope
	scratch *scratch.Buffer

	// Stable widget state (hot/active/open), keyed by ID
	state map[ID]widgetState

	area       rect
	prevMouseX float32
	prevMouseY float32
	focus      ID
	focusHit   bool
	popup      popupState
	inPopup    bool
	repaint    bool
}

type cmdKind uint8

const (
	cmdQuad cmdKind = iota
	cmdText
)

type cmd struct {
	kind     cmdKind
	x, y     float32 // quad: center; text: top-left
	w, h     float32
	rotation float32
	color    colors.Color
	text     string
	fontSize float32
}

type widgetState struct {
	hot    bool
	active bool
	open   bool
}

func New(style Style, capCmds int) *Ctx {
	c := &Ctx{
		visuals: DarkVisuals(),
		style:   style,
		cmds:    make([]cmd, 0, capCmds),
		overlay: make([]cmd, 0, capCmds/4),
		layouts: make([]layout, 0, 16),
		scopes:  make([]idScope, 0, 16),
		scratch: scratch.New(4096),
		state:   make(map[ID]widgetState, 256),
	}
	c.target = &c.cmds
	return c
}

func (c *Ctx) Style() Style         { return c.style }
func (c *Ctx) Visuals() Visuals     { return c.visuals }
func (c *Ctx) SetVisuals(v Visuals) { c.visuals = v }

// RequestRepaint asks the host for another frame right away, e.g. while
// something animates.
func (c *Ctx) RequestRepaint()        { c.repaint = true }
func (c *Ctx) RepaintRequested() bool { return c.repaint }

// BeginFrame resets the per-frame buffers and lays widgets out top to
// bottom inside the area (x, y, w, h).
func (c *Ctx) BeginFrame(in *Input, x, y, w, h float32) {
	c.I = in
	c.cmds = c.cmds[:0]
	c.overlay = c.overlay[:0]
	c.target = &c.cmds
	c.scratch.Reset()
	c.repaint = false
	c.focusHit = false
	c.popup.seen = false
	c.inPopup = false

	c.area = rect{x, y, w, h}
	pad := c.style.Padding
	c.layouts = append(c.layouts[:0], newLayout(false, x+pad, y+pad))
	c.scopes = append(c.scopes[:0], idScope{id: idSeed})
}

// EndFrame settles popups and focus, then draws the recorded commands.
func (c *Ctx) EndFrame() {
	mx, my := c.I.MouseX, c.I.MouseY
	if c.popup.id != 0 {
		switch {
		case !c.popup.seen:
			// owner was not drawn this frame
			c.closePopup()
		case c.I.Escape:
			c.closePopup()
		case c.I.MousePressed && !c.popup.rect.contains(mx, my) && !c.popup.owner.contains(mx, my):
			c.closePopup()
		}
	}
	if c.focus != 0 && c.I.MousePressed && !c.focusHit {
		c.focus = 0
	}
	c.prevMouseX, c.prevMouseY = mx, my
	c.Flush()
}

// Flush draws base commands, then overlays.
func (c *Ctx) Flush() {
	for i := range c.cmds {
		c.draw(&c.cmds[i])
	}
	for i := range c.overlay {
		c.draw(&c.overlay[i])
	}
}

func (c *Ctx) draw(k *cmd) {
	switch k.kind {
	case cmdQuad:
		c.R.DrawQuad(k.x, k.y, k.w, k.h, k.color, k.rotation)
	case cmdText:
		c.R.DrawText(k.x, k.y, k.text, k.fontSize, k.color)
	}
}

// ===== Internal: record =====

func (c *Ctx) emit(k cmd) int {
	*c.target = append(*c.target, k)
	return len(*c.target) - 1
}

func (c *Ctx) fill(r rect, col colors.Color) {
	if col[3] <= 0 || r.w <= 0 || r.h <= 0 {
		return
	}
	c.emit(cmd{kind: cmdQuad, x: r.x + r.w*0.5, y: r.y + r.h*0.5, w: r.w, h: r.h, color: col})
}

func (c *Ctx) fillRotated(cx, cy, w, h float32, col colors.Color, rotation float32) {
	c.emit(cmd{kind: cmdQuad, x: cx, y: cy, w: w, h: h, color: col, rotation: rotation})
}

// frame draws a 1px-ish outline by layering the stroke under the fill.
func (c *Ctx) frame(r rect, fill, stroke colors.Color) {
	c.fill(r, stroke)
	c.fill(r.shrink(c.style.Stroke), fill)
}

func (c *Ctx) text(x, y float32, s string, size float32, col colors.Color) {
	if s == "" {
		return
	}
	c.emit(cmd{kind: cmdText, x: x, y: y, text: s, fontSize: size, color: col})
}

// textIn draws s vertically centered in r at x offset dx.
func (c *Ctx) textIn(r rect, dx float32, s string, col colors.Color) {
	_, th := c.R.Measure(s, c.style.FontSize)
	c.text(r.x+dx, r.y+(r.h-th)*0.5, s, c.style.FontSize, col)
}

// ===== Internal: interaction =====

type response struct {
	rect     rect
	hovered  bool
	pressed  bool
	clicked  bool
	dragging bool
}

// hit reports whether the mouse is over r and not covered by an open popup.
func (c *Ctx) hit(r rect) bool {
	mx, my := c.I.MouseX, c.I.MouseY
	if !c.inPopup && c.popup.id != 0 && c.popup.rect.contains(mx, my) {
		return false
	}
	return r.contains(mx, my)
}

func (c *Ctx) interact(id ID, r rect) response {
	st := c.state[id]
	resp := response{rect: r, hovered: c.hit(r)}

	// active = mouse down started inside
	if c.I.MousePressed && resp.hovered {
		st.active = true
		resp.pressed = true
	}
	if st.active {
		resp.dragging = true
		if c.I.MouseReleased {
			// clicked when released while still hot and was active
			resp.clicked = resp.hovered
			st.active = false
		} else if !c.I.MouseDown && !resp.pressed {
			// release happened outside our view of the input
			st.active = false
			resp.dragging = false
		}
	}
	st.hot = resp.hovered
	c.state[id] = st // stable map mutation, no alloc after first insert
	return resp
}

func (c *Ctx) widgetFill(resp response) colors.Color {
	switch {
	case resp.dragging:
		return c.visuals.WidgetActive
	case resp.hovered:
		return c.visuals.WidgetHovered
	default:
		return c.visuals.Widget
	}
}

// ===== Popups =====

type popupState struct {
	id    ID
	owner rect // widget that opened the popup
	rect  rect // popup bounds, updated every frame it is drawn
	seen  bool // owner drawn this frame
	bgCmd int
	ox    float32
	oy    float32
}

func (c *Ctx) popupOpen(id ID) bool { return c.popup.id == id }

func (c *Ctx) togglePopup(id ID, owner rect) {
	if c.popup.id == id {
		c.closePopup()
		return
	}
	c.popup = popupState{id: id, owner: owner}
}

func (c *Ctx) closePopup() { c.popup = popupState{} }

func (c *Ctx) beginPopup(x, y float32) {
	c.popup.seen = true
	c.popup.ox, c.popup.oy = x, y
	c.target = &c.overlay
	c.inPopup = true
	c.popup.bgCmd = c.emit(cmd{kind: cmdQuad, color: c.visuals.Popup})
	pad := c.style.PopupPadding
	c.layouts = append(c.layouts, newLayout(false, x+pad, y+pad))
	c.PushID("popup")
}

func (c *Ctx) endPopup() {
	c.PopID()
	l := c.popLayout()
	pad := c.style.PopupPadding
	w, h := l.size()
	r := rect{c.popup.ox, c.popup.oy, w + 2*pad, h + 2*pad}
	bg := &c.overlay[c.popup.bgCmd]
	bg.x, bg.y, bg.w, bg.h = r.x+r.w*0.5, r.y+r.h*0.5, r.w, r.h
	c.popup.rect = r
	c.target = &c.cmds
	c.inPopup = false
}
