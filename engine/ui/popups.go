package ui

import "github.com/hubastard/grove-toolkit/engine/colors"

// ComboBox shows selected and, when clicked, a popup listing options.
// Picking an option stores its index in *index and closes the popup.
func (c *Ctx) ComboBox(label, selected string, options []string, index *int) bool {
	id := c.ID(label)
	widest, _ := c.R.Measure(selected, c.style.FontSize)
	for _, o := range options {
		if w, _ := c.R.Measure(o, c.style.FontSize); w > widest {
			widest = w
		}
	}
	arrow, _ := c.R.Measure("v", c.style.FontSize)
	pad := c.style.ButtonPadX
	r := c.allocate(widest+arrow+3*pad, c.style.RowHeight)
	resp := c.interact(id, r)
	if resp.clicked {
		c.togglePopup(id, r)
	}

	c.frame(r, c.widgetFill(resp), c.visuals.Stroke)
	c.textIn(r, pad, selected, c.textColor(resp))
	c.textIn(r, r.w-pad-arrow, "v", c.textColor(resp))
	if label != "" {
		c.Label(label)
	}

	changed := false
	if c.popupOpen(id) {
		c.beginPopup(r.x, r.y+r.h+2)
		for i, o := range options {
			if c.Selectable(o, i == *index) {
				*index = i
				changed = true
			}
		}
		c.endPopup()
		if changed {
			c.closePopup()
		}
	}
	return changed
}

var channelNames = [4]string{"R", "G", "B", "A"}

// ColorEdit shows a swatch of *col; clicking it opens a popup with one
// slider per channel.
func (c *Ctx) ColorEdit(col *colors.Color) bool {
	id := c.autoID("color")
	r := c.allocate(c.style.SwatchWidth, c.style.RowHeight)
	resp := c.interact(id, r)
	if resp.clicked {
		c.togglePopup(id, r)
	}

	// opaque half left, real alpha right
	c.fill(r, c.visuals.Stroke)
	inner := r.shrink(c.style.Stroke)
	c.fill(rect{inner.x, inner.y, inner.w * 0.5, inner.h}, col.WithAlpha(1))
	c.fill(rect{inner.x + inner.w*0.5, inner.y, inner.w * 0.5, inner.h}, c.visuals.ExtremeBg)
	c.fill(rect{inner.x + inner.w*0.5, inner.y, inner.w * 0.5, inner.h}, *col)

	changed := false
	if c.popupOpen(id) {
		c.beginPopup(r.x, r.y+r.h+2)
		for i, name := range channelNames {
			c.Row(name, func() {
				c.Label(name)
				v := col[i]
				if c.Slider(&v, 0, 1, "") {
					col[i] = v
					changed = true
				}
			})
		}
		c.Label(hexColor(c, *col))
		c.endPopup()
	}
	return changed
}

const hexDigits = "0123456789ABCDEF"

func hexColor(c *Ctx, col colors.Color) string {
	b := c.scratch.F().Rune('#')
	for _, v := range col.RGBA8() {
		b = b.Rune(rune(hexDigits[v>>4])).Rune(rune(hexDigits[v&0x0f]))
	}
	return b.View()
}
