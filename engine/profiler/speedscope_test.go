//go:build profile

package profiler

import "testing"

func TestToSpeedscopeBalancesEvents(t *testing.T) {
	evs := []event{
		{atNS: 0, frame: 0, open: true},
		{atNS: 1000, frame: 1, open: true},
		{atNS: 2000, frame: 2}, // unmatched close
		{atNS: 3000, frame: 1},
		{atNS: 5000, frame: 1, open: true}, // never closed
	}
	out, end := toSpeedscope(evs)
	want := []ssEvent{
		{"O", 0, 0},
		{"O", 1, 1},
		{"C", 3, 1},
		{"O", 5, 1},
		{"C", 5, 1},
		{"C", 5, 0},
	}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, out[i], want[i])
		}
	}
	if end != 5 {
		t.Fatalf("end = %d, want 5", end)
	}
}
