package text

import (
	"github.com/hubastard/grove-toolkit/engine/colors"
	"github.com/hubastard/grove-toolkit/engine/gfx/renderer2d"
)

// DrawText draws s with its top-left at (x,y), scaled to size. Positive Y goes downward.
func DrawText(r2d *renderer2d.Renderer2D, font *Font, x, y float32, s string, size float32, color colors.Color) {
	scale := fontScale(font, size)
	penX := x
	baseY := y + font.Ascent*scale
	lineH := LineHeight(font) * scale
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}

		if prev >= 0 && font.Face != nil {
			penX += float32(font.Face.Kern(prev, r)) / 64.0 * scale
		}

		if g.W > 0 && g.H > 0 {
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			w, h := float32(g.W)*scale, float32(g.H)*scale
			r2d.DrawTexturedQuadUV(
				left+w*0.5, top+h*0.5,
				w, h,
				font.Texture, color, 0,
				g.U0, g.V0, g.U1, g.V1,
			)
		}

		penX += g.Advance * scale
		prev = r
	}
}

func MeasureText(font *Font, s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := LineHeight(font)
	height = lineH

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 && font.Face != nil {
			lineW += float32(font.Face.Kern(prev, r)) / 64.0
		}

		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	scale := fontScale(font, size)
	return width * scale, height * scale
}

func fontScale(font *Font, size float32) float32 {
	if size <= 0 || font.SizePx <= 0 {
		return 1
	}
	return size / font.SizePx
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(font *Font) float32    { return font.Ascent }
func BaselineToBottom(font *Font) float32 { return -font.Descent }
func LineHeight(font *Font) float32       { return font.Ascent - font.Descent + font.LineGap }

// Painter draws UI primitives through a Renderer2D with one font.
type Painter struct {
	R2D  *renderer2d.Renderer2D
	Font *Font
}

func (p Painter) DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32) {
	p.R2D.DrawQuad(cx, cy, w, h, color, rotation)
}

func (p Painter) DrawText(x, y float32, s string, size float32, color colors.Color) {
	DrawText(p.R2D, p.Font, x, y, s, size, color)
}

func (p Painter) Measure(s string, size float32) (float32, float32) {
	return MeasureText(p.Font, s, size)
}
