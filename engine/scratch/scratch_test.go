package scratch

import "testing"

func TestBuilderFormats(t *testing.T) {
	b := New(64)
	got := b.F().Str("v=").Float(42.5, 1).Str("°").View()
	if got != "v=42.5°" {
		t.Fatalf("got %q", got)
	}
	got = b.F().Int(-7).Rune('%').String()
	if got != "-7%" {
		t.Fatalf("got %q", got)
	}
}

func TestViewsSurviveLaterAppends(t *testing.T) {
	b := New(4) // force growth
	first := b.F().Str("first").View()
	second := b.F().Str("second, a longer string").View()
	if first != "first" || second != "second, a longer string" {
		t.Fatalf("views corrupted: %q %q", first, second)
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	b := New(16)
	b.F().Str("hello")
	c := b.Cap()
	b.Reset()
	if b.Len() != 0 || b.Cap() != c {
		t.Fatalf("len=%d cap=%d", b.Len(), b.Cap())
	}
}

func TestEmptyView(t *testing.T) {
	b := New(0)
	if got := b.F().View(); got != "" {
		t.Fatalf("got %q", got)
	}
}
