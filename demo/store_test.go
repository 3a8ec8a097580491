package demo

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/grove-toolkit/engine/colors"
)

func TestNewStoreDefaults(t *testing.T) {
	want := State{
		Choice:    First,
		Magnitude: 42,
		Tint:      colors.Color{0.34, 0.425, 0.45, 0.5},
		Animating: true,
	}
	if diff := cmp.Diff(want, NewStore().Snapshot()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestMagnitudeIdentityWithinDomain(t *testing.T) {
	st := NewStore()
	for _, v := range []float32{0, 0.5, 42, 180, 359.9, 360} {
		st.SetMagnitude(v)
		if got := st.Magnitude(); got != v {
			t.Errorf("SetMagnitude(%v) read back %v", v, got)
		}
	}
}

func TestMagnitudeClamps(t *testing.T) {
	inf := float32(math.Inf(1))
	for _, tc := range []struct {
		in, want float32
	}{
		{-10, 0},
		{400, 360},
		{-0.001, 0},
		{360.5, 360},
		{-inf, 0},
		{inf, 360},
		{float32(math.NaN()), 0},
	} {
		st := NewStore()
		st.SetMagnitude(tc.in)
		if got := st.Magnitude(); got != tc.want {
			t.Errorf("SetMagnitude(%v) read back %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestChoiceRoundTripAndExclusivity(t *testing.T) {
	st := NewStore()
	for _, c := range Choices() {
		st.SetChoice(c)
		if got := st.Choice(); got != c {
			t.Fatalf("SetChoice(%v) read back %v", c, got)
		}
		n := 0
		for _, other := range Choices() {
			if st.Selected(other) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("%d choices selected after SetChoice(%v)", n, c)
		}
	}
	st.SetChoice(Choice(7))
	if st.Choice() != Third {
		t.Fatalf("out-of-range choice stored as %v, want Third", st.Choice())
	}
}

func TestChoiceString(t *testing.T) {
	got := []string{First.String(), Second.String(), Third.String(), Choice(9).String()}
	want := []string{"First", "Second", "Third", "Third"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestFractionStaysInUnitRange(t *testing.T) {
	st := NewStore()
	for _, v := range []float32{-50, 0, 42, 180, 360, 1e9, float32(math.NaN())} {
		st.SetMagnitude(v)
		if f := st.Fraction(); f < 0 || f > 1 {
			t.Errorf("Fraction() = %v after SetMagnitude(%v)", f, v)
		}
	}
	st.SetMagnitude(180)
	if f := st.Fraction(); f != 0.5 {
		t.Fatalf("Fraction() = %v at 180, want 0.5", f)
	}
}

func TestToggleFlagIsInvolution(t *testing.T) {
	st := NewStore()
	for _, start := range []bool{false, true} {
		st.SetFlag(start)
		st.ToggleFlag()
		if st.Flag() == start {
			t.Fatal("ToggleFlag did not flip")
		}
		st.ToggleFlag()
		if st.Flag() != start {
			t.Fatalf("toggling twice from %v gave %v", start, st.Flag())
		}
	}
}
