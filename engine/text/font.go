package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hubastard/grove-toolkit/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a glyph atlas rasterized at SizePx. Other sizes are drawn by scaling.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  core.Texture
	AtlasW, AtlasH           int
	Face                     font.Face
}

func (f *Font) Close() error {
	if f == nil || f.Face == nil {
		return nil
	}
	err := f.Face.Close()
	f.Face = nil
	return err
}

// LoadDefault builds an atlas from the embedded Go Regular typeface.
func LoadDefault(r core.Renderer, sizePx float32) (*Font, error) {
	return Load(r, goregular.TTF, sizePx)
}

// Load builds a white glyph atlas (alpha coverage) for Latin-1 and uploads it as an RGBA texture.
func Load(r core.Renderer, ttf []byte, sizePx float32) (*Font, error) {
	img, fnt, err := rasterize(ttf, sizePx)
	if err != nil {
		return nil, err
	}
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: img.Bounds().Dx(), Height: img.Bounds().Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    img.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		_ = fnt.Close()
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}
	fnt.Texture = tex
	return fnt, nil
}

func rasterize(ttf []byte, sizePx float32) (*image.RGBA, *Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measure []meas
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: rr,
			w: (br.Max.X - br.Min.X).Ceil(), h: (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()), // distance from baseline to top
		})
	}

	// Shelf packer. Start with 256^2 and grow until everything fits.
	const padding = 2
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}
		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			_ = face.Close()
			return nil, nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		glyph := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			// Drawer expects a dot at the baseline.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			glyph.U0 = float32(p.X) / float32(atlasSize)
			glyph.V0 = float32(p.Y) / float32(atlasSize)
			glyph.U1 = float32(p.X+g.w) / float32(atlasSize)
			glyph.V1 = float32(p.Y+g.h) / float32(atlasSize)
		}
		glyphs[g.r] = glyph
	}

	// Drawer output is premultiplied; the pipeline blends straight alpha.
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = 255, 255, 255
	}

	return dst, &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		AtlasW: atlasSize, AtlasH: atlasSize,
		Face: face,
	}, nil
}
