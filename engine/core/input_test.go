package core

import "testing"

func TestInputMouseEdges(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	if !in.MousePressed(MouseLeft) || !in.MouseDown(MouseLeft) {
		t.Fatal("press not recorded")
	}
	in.EndFrame()
	if in.MousePressed(MouseLeft) {
		t.Fatal("pressed edge survived EndFrame")
	}
	if !in.MouseDown(MouseLeft) {
		t.Fatal("button level lost across frames")
	}
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	if !in.MouseReleased(MouseLeft) || in.MouseDown(MouseLeft) {
		t.Fatal("release not recorded")
	}
}

func TestInputClickWithinOneFrame(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	if !in.MousePressed(MouseLeft) || !in.MouseReleased(MouseLeft) {
		t.Fatal("fast click should report both edges")
	}
}

func TestInputKeyRepeat(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyBackspace, Down: true})
	in.EndFrame()
	in.Handle(EventKey{Key: KeyBackspace, Down: true})
	if in.KeyPressed(KeyBackspace) {
		t.Fatal("held key without repeat flag must not re-trigger")
	}
	in.Handle(EventKey{Key: KeyBackspace, Down: true, Repeat: true})
	if !in.KeyPressed(KeyBackspace) {
		t.Fatal("repeat should re-trigger")
	}
}

func TestInputCharsAndScroll(t *testing.T) {
	in := NewInput()
	in.Handle(EventChar{Rune: 'h'})
	in.Handle(EventChar{Rune: 'i'})
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 2})
	if got := string(in.Chars()); got != "hi" {
		t.Fatalf("Chars() = %q", got)
	}
	if _, y := in.Scroll(); y != 3 {
		t.Fatalf("scroll y = %v", y)
	}
	in.EndFrame()
	if len(in.Chars()) != 0 {
		t.Fatal("chars survived EndFrame")
	}
}

func TestInputIgnoresUnknownButton(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseButton(42), Down: true})
	if in.MouseDown(MouseButton(42)) {
		t.Fatal("out of range button reported down")
	}
}
