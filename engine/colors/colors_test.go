package colors

import "testing"

func TestMultiplyScalesAlpha(t *testing.T) {
	got := White.Multiply(0.5)
	want := Color{0.5, 0.5, 0.5, 0.5}
	if got != want {
		t.Fatalf("Multiply(0.5) = %v, want %v", got, want)
	}
}

func TestShadeKeepsAlpha(t *testing.T) {
	got := Color{0.5, 0.5, 0.5, 0.25}.Shade(4)
	want := Color{1, 1, 1, 0.25}
	if got != want {
		t.Fatalf("Shade(4) = %v, want %v", got, want)
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(Black, White, 0); got != Black {
		t.Errorf("Lerp t=0 = %v", got)
	}
	if got := Lerp(Black, White, 1); got != White {
		t.Errorf("Lerp t=1 = %v", got)
	}
	if got := Lerp(Black, White, 7); got != White {
		t.Errorf("Lerp clamps t, got %v", got)
	}
}

func TestRGBA8(t *testing.T) {
	tests := []struct {
		in   Color
		want [4]uint8
	}{
		{White, [4]uint8{255, 255, 255, 255}},
		{Black.WithAlpha(0), [4]uint8{0, 0, 0, 0}},
		{Color{2, -1, 0.5, 1}, [4]uint8{255, 0, 128, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.RGBA8(); got != tt.want {
			t.Errorf("%v.RGBA8() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
