package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestRasterizeCoversASCII(t *testing.T) {
	img, f, err := rasterize(goregular.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for r := rune('!'); r <= '~'; r++ {
		g, ok := f.Glyphs[r]
		if !ok {
			t.Fatalf("glyph %q missing", r)
		}
		if g.W == 0 || g.H == 0 {
			t.Fatalf("glyph %q has empty bitmap", r)
		}
		if g.U1 <= g.U0 || g.V1 <= g.V0 {
			t.Fatalf("glyph %q has degenerate UVs", r)
		}
	}
	if img.Bounds().Dx() != f.AtlasW {
		t.Fatalf("atlas width mismatch: %d vs %d", img.Bounds().Dx(), f.AtlasW)
	}
}

func TestMeasureTextScales(t *testing.T) {
	_, f, err := rasterize(goregular.TTF, 32)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w32, h32 := MeasureText(f, "Hello", 32)
	w16, h16 := MeasureText(f, "Hello", 16)
	if w32 <= 0 || h32 <= 0 {
		t.Fatalf("empty measure: %v x %v", w32, h32)
	}
	if w16 != w32/2 || h16 != h32/2 {
		t.Fatalf("half size = %vx%v, want %vx%v", w16, h16, w32/2, h32/2)
	}
}

func TestMeasureTextMultiline(t *testing.T) {
	_, f, err := rasterize(goregular.TTF, 20)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, one := MeasureText(f, "a", 20)
	_, two := MeasureText(f, "a\nb", 20)
	if two != 2*one {
		t.Fatalf("two lines = %v, want %v", two, 2*one)
	}
	wLong, _ := MeasureText(f, "short\nmuch longer line", 20)
	wOnly, _ := MeasureText(f, "much longer line", 20)
	if wLong != wOnly {
		t.Fatalf("width should be the widest line: %v vs %v", wLong, wOnly)
	}
}
