package ui

// ===== Geometry =====

type rect struct{ x, y, w, h float32 }

func (r rect) contains(x, y float32) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) shrink(d float32) rect {
	return rect{r.x + d, r.y + d, r.w - 2*d, r.h - 2*d}
}

func (r rect) center() (float32, float32) { return r.x + r.w*0.5, r.y + r.h*0.5 }

// ===== Layout scopes =====

type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// layout is a cursor that places children one after another along its axis.
type layout struct {
	axis       Axis
	left, top  float32 // origin
	x, y       float32 // cursor
	maxX, maxY float32 // extent of placed children
}

func newLayout(horizontal bool, x, y float32) layout {
	l := layout{left: x, top: y, x: x, y: y, maxX: x, maxY: y}
	if horizontal {
		l.axis = Horizontal
	}
	return l
}

func (l *layout) size() (float32, float32) { return l.maxX - l.left, l.maxY - l.top }

func (c *Ctx) cur() *layout { return &c.layouts[len(c.layouts)-1] }

func (c *Ctx) popLayout() layout {
	l := c.layouts[len(c.layouts)-1]
	c.layouts = c.layouts[:len(c.layouts)-1]
	return l
}

// allocate reserves a w*h rect at the cursor and advances it.
func (c *Ctx) allocate(w, h float32) rect {
	l := c.cur()
	r := rect{l.x, l.y, w, h}
	if w <= 0 && h <= 0 {
		return r
	}
	if l.axis == Horizontal {
		l.x += w + c.style.Spacing
	} else {
		l.y += h + c.style.Spacing
	}
	l.maxX = max(l.maxX, r.x+w)
	l.maxY = max(l.maxY, r.y+h)
	return r
}

// avail is the width left between the cursor and the right padding.
func (c *Ctx) avail() float32 {
	right := c.area.x + c.area.w - c.style.Padding
	if c.inPopup {
		return c.style.PopupWidth
	}
	return max(right-c.cur().x, 0)
}

// Row lays out everything fn adds left to right. id scopes the children.
func (c *Ctx) Row(id string, fn func()) {
	parent := c.cur()
	x, y := parent.x, parent.y
	c.PushID(id)
	c.layouts = append(c.layouts, newLayout(true, x, y))
	fn()
	l := c.popLayout()
	c.PopID()
	c.allocate(l.size())
}

// indent lays out fn's children vertically, shifted right by the indent.
func (c *Ctx) indent(fn func()) {
	parent := c.cur()
	x, y := parent.x, parent.y
	c.layouts = append(c.layouts, newLayout(false, x+c.style.Indent, y))
	fn()
	l := c.popLayout()
	w, h := l.size()
	if h > 0 {
		c.allocate(w+c.style.Indent, h)
	}
}
