package ui

import (
	"math"

	"github.com/hubastard/grove-toolkit/engine/colors"
)

// ===== Text =====

func (c *Ctx) Heading(text string) {
	size := c.style.HeadingSize
	w, h := c.R.Measure(text, size)
	r := c.allocate(w, h)
	c.text(r.x, r.y, text, size, c.visuals.StrongText)
}

func (c *Ctx) Label(text string) {
	w, h := c.R.Measure(text, c.style.FontSize)
	r := c.allocate(w, max(h, c.style.RowHeight))
	c.textIn(r, 0, text, c.visuals.Text)
}

func (c *Ctx) Separator() {
	w := c.avail()
	r := c.allocate(w, c.style.Spacing)
	c.fill(rect{r.x, r.y + r.h*0.5, w, c.style.Stroke}, c.visuals.Stroke)
}

// ===== Buttons =====

func (c *Ctx) Button(text string) bool {
	tw, _ := c.R.Measure(text, c.style.FontSize)
	r := c.allocate(tw+2*c.style.ButtonPadX, c.style.RowHeight)
	resp := c.interact(c.ID(text), r)
	c.frame(r, c.widgetFill(resp), c.visuals.Stroke)
	c.textIn(r, c.style.ButtonPadX, text, c.textColor(resp))
	return resp.clicked
}

func (c *Ctx) textColor(resp response) colors.Color {
	if resp.hovered || resp.dragging {
		return c.visuals.StrongText
	}
	return c.visuals.Text
}

// Checkbox flips *v when clicked and reports whether it did.
func (c *Ctx) Checkbox(label string, v *bool) bool {
	box := c.style.RowHeight * 0.7
	tw, _ := c.R.Measure(label, c.style.FontSize)
	r := c.allocate(box+c.style.Spacing+tw, c.style.RowHeight)
	resp := c.interact(c.ID(label), r)
	if resp.clicked {
		*v = !*v
	}

	b := rect{r.x, r.y + (r.h-box)*0.5, box, box}
	c.frame(b, c.widgetFill(resp), c.visuals.Stroke)
	if *v {
		c.fill(b.shrink(box*0.25), c.visuals.Accent)
	}
	c.textIn(r, box+c.style.Spacing, label, c.textColor(resp))
	return resp.clicked
}

// Radio draws one option of a group; the caller assigns on click.
func (c *Ctx) Radio(label string, selected bool) bool {
	dot := c.style.RowHeight * 0.7
	tw, _ := c.R.Measure(label, c.style.FontSize)
	r := c.allocate(dot+c.style.Spacing+tw, c.style.RowHeight)
	resp := c.interact(c.ID(label), r)

	cx, cy := r.x+dot*0.5, r.y+r.h*0.5
	c.fillRotated(cx, cy, dot, dot, c.visuals.Stroke, math.Pi/4)
	c.fillRotated(cx, cy, dot*0.8, dot*0.8, c.widgetFill(resp), math.Pi/4)
	if selected {
		c.fillRotated(cx, cy, dot*0.4, dot*0.4, c.visuals.Accent, math.Pi/4)
	}
	c.textIn(r, dot+c.style.Spacing, label, c.textColor(resp))
	return resp.clicked
}

// Selectable is a label that highlights when selected.
func (c *Ctx) Selectable(label string, selected bool) bool {
	tw, _ := c.R.Measure(label, c.style.FontSize)
	w := tw + 2*c.style.ButtonPadX
	if c.inPopup {
		w = max(w, c.style.PopupWidth-2*c.style.PopupPadding)
	}
	r := c.allocate(w, c.style.RowHeight)
	resp := c.interact(c.ID(label), r)

	col := c.textColor(resp)
	switch {
	case selected:
		c.fill(r, c.visuals.Selection)
		col = c.visuals.SelectionText
	case resp.hovered:
		c.fill(r, c.visuals.WidgetHovered)
	}
	c.textIn(r, c.style.ButtonPadX, label, col)
	return resp.clicked
}

// ===== Decorations =====

// Spinner draws a rotating cross and keeps frames coming while visible.
func (c *Ctx) Spinner() {
	s := c.style.RowHeight
	r := c.allocate(s, s)
	cx, cy := r.center()
	angle := float32(math.Mod(c.I.Time*math.Pi*2, math.Pi*2))
	c.fillRotated(cx, cy, s*0.8, s*0.15, c.visuals.Accent, angle)
	c.fillRotated(cx, cy, s*0.15, s*0.8, c.visuals.Accent.WithAlpha(0.5), angle)
	c.RequestRepaint()
}

// Collapsing draws a clickable header; fn runs only while it is open.
func (c *Ctx) Collapsing(title string, fn func()) {
	id := c.ID(title)
	tw, _ := c.R.Measure(title, c.style.FontSize)
	mw, _ := c.R.Measure("+ ", c.style.FontSize)
	r := c.allocate(mw+tw, c.style.RowHeight)
	resp := c.interact(id, r)
	st := c.state[id]
	if resp.clicked {
		st.open = !st.open
		c.state[id] = st
	}
	marker := "+ "
	if st.open {
		marker = "- "
	}
	c.textIn(r, 0, c.scratch.F().Str(marker).Str(title).View(), c.textColor(resp))
	if st.open {
		c.PushID(title)
		c.indent(fn)
		c.PopID()
	}
}
