package ui

import (
	"unicode"
	"unicode/utf8"
)

// TextEdit is a single-line editor for *s. Clicking focuses it; typed
// characters append, Backspace deletes the last rune, Enter or Escape or
// a click elsewhere drops focus. hint shows while *s is empty.
func (c *Ctx) TextEdit(s *string, hint string) bool {
	id := c.autoID("text")
	r := c.allocate(c.style.TextEditWidth, c.style.RowHeight)
	resp := c.interact(id, r)
	if resp.pressed {
		c.focus = id
	}
	focused := c.focus == id
	if focused && c.I.MousePressed && resp.hovered {
		c.focusHit = true
	}

	changed := false
	if focused {
		for _, ch := range c.I.Chars {
			if unicode.IsPrint(ch) {
				*s += string(ch)
				changed = true
			}
		}
		if c.I.Backspace && len(*s) > 0 {
			_, size := utf8.DecodeLastRuneInString(*s)
			*s = (*s)[:len(*s)-size]
			changed = true
		}
		if c.I.Enter || c.I.Escape {
			c.focus = 0
		}
	}

	stroke := c.visuals.Stroke
	if focused {
		stroke = c.visuals.Accent
	}
	c.frame(r, c.visuals.ExtremeBg, stroke)
	pad := c.style.ButtonPadX
	if *s == "" {
		c.textIn(r, pad, hint, c.visuals.WeakText)
	} else {
		c.textIn(r, pad, *s, c.visuals.StrongText)
	}
	if c.focus == id {
		// blink at 1Hz
		if int(c.I.Time*2)%2 == 0 {
			tw, _ := c.R.Measure(*s, c.style.FontSize)
			c.fill(rect{r.x + pad + tw, r.y + r.h*0.2, c.style.Stroke * 2, r.h * 0.6}, c.visuals.StrongText)
		}
		c.RequestRepaint()
	}
	return changed
}
