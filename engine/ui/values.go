package ui

import (
	"math"

	"github.com/hubastard/grove-toolkit/engine/colors"
)

func clamp(v, lo, hi float32) float32 {
	if v != v {
		return lo
	}
	return max(lo, min(v, hi))
}

// precision picks how many decimals a value in [lo, hi] is shown with.
func precision(lo, hi float32) int {
	switch span := hi - lo; {
	case span <= 2:
		return 2
	case span <= 100:
		return 1
	default:
		return 0
	}
}

// Slider edits *v in [lo, hi] by clicking or dragging along the track.
// The current value is shown right of the track, followed by suffix.
func (c *Ctx) Slider(v *float32, lo, hi float32, suffix string) bool {
	id := c.autoID("slider")
	tw := c.style.SliderWidth
	label := c.scratch.F().Float(*v, precision(lo, hi)).Str(suffix).View()
	lw, _ := c.R.Measure(label, c.style.FontSize)
	r := c.allocate(tw+c.style.Spacing+lw, c.style.RowHeight)
	track := rect{r.x, r.y, tw, r.h}
	resp := c.interact(id, track)

	changed := false
	if resp.dragging && hi > lo {
		t := clamp((c.I.MouseX-track.x)/track.w, 0, 1)
		if nv := lo + t*(hi-lo); nv != *v {
			*v = nv
			changed = true
			label = c.scratch.F().Float(*v, precision(lo, hi)).Str(suffix).View()
		}
	}

	var frac float32
	if hi > lo {
		frac = (clamp(*v, lo, hi) - lo) / (hi - lo)
	}
	rail := r.h * 0.3
	cy := track.y + track.h*0.5
	c.fill(rect{track.x, cy - rail*0.5, track.w, rail}, c.visuals.ExtremeBg)
	c.fill(rect{track.x, cy - rail*0.5, track.w * frac, rail}, c.visuals.Selection)
	knob := r.h * 0.7
	hx := track.x + track.w*frac
	c.fill(rect{hx - knob*0.5, cy - knob*0.5, knob, knob}, c.widgetFill(resp).Shade(1.3))
	c.textIn(r, tw+c.style.Spacing, label, c.visuals.Text)
	return changed
}

// DragValue edits *v by dragging horizontally, speed units per pixel.
func (c *Ctx) DragValue(v *float32, speed, lo, hi float32) bool {
	id := c.autoID("drag")
	prec := precision(lo, hi)
	label := c.scratch.F().Float(*v, prec).View()
	tw, _ := c.R.Measure(label, c.style.FontSize)
	r := c.allocate(max(tw+2*c.style.ButtonPadX, c.style.DragMinWidth), c.style.RowHeight)
	resp := c.interact(id, r)

	changed := false
	if resp.dragging && !resp.pressed {
		if dx := c.I.MouseX - c.prevMouseX; dx != 0 {
			if nv := clamp(*v+dx*speed, lo, hi); nv != *v {
				*v = nv
				changed = true
				label = c.scratch.F().Float(*v, prec).View()
			}
		}
	}

	c.frame(r, c.widgetFill(resp), c.visuals.Stroke)
	w, _ := c.R.Measure(label, c.style.FontSize)
	c.textIn(r, (r.w-w)*0.5, label, c.textColor(resp))
	return changed
}

// ProgressBar shows fraction as a filled bar with a percentage. With
// animate set it draws a moving highlight and requests repaints.
// It reports whether the mouse is over the bar.
func (c *Ctx) ProgressBar(fraction float32, animate bool) bool {
	f := clamp(fraction, 0, 1)
	w := max(c.style.ProgressWidth, min(c.avail(), c.style.ProgressWidth*1.5))
	r := c.allocate(w, c.style.RowHeight)
	hovered := c.hit(r)

	c.fill(r, c.visuals.ExtremeBg)
	fill := rect{r.x, r.y, r.w * f, r.h}
	c.fill(fill, c.visuals.Selection)
	if animate {
		band := min(r.h, fill.w)
		t := float32(math.Mod(c.I.Time*0.8, 1))
		x := fill.x + (fill.w-band)*t
		c.fill(rect{x, fill.y, band, fill.h}, colors.Lerp(c.visuals.Selection, c.visuals.SelectionText, 0.35))
		c.RequestRepaint()
	}
	pct := c.scratch.F().Int(int(f*100 + 0.5)).Rune('%').View()
	c.textIn(r, c.style.ButtonPadX, pct, c.visuals.StrongText)
	return hovered
}
