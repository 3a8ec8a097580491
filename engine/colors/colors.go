package colors

type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Magenta   = Color{1, 0, 1, 1}
	Cyan      = Color{0, 1, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
	LightBlue = Color{0.68, 0.85, 0.90, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Multiply scales every channel, alpha included.
func (c Color) Multiply(f float32) Color {
	for i := range c {
		c[i] *= f
	}
	return c
}

// Shade scales the RGB channels and leaves alpha untouched.
func (c Color) Shade(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] * f)
	}
	return c
}

func Lerp(a, b Color, t float32) Color {
	t = clamp01(t)
	var out Color
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}

// RGBA8 converts to 8-bit channels, clamping out-of-range values.
func (c Color) RGBA8() [4]uint8 {
	var out [4]uint8
	for i, v := range c {
		out[i] = uint8(clamp01(v)*255 + 0.5)
	}
	return out
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
