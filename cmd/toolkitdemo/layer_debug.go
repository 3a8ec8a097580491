package main

import (
	"fmt"
	"log"

	"github.com/hubastard/grove-toolkit/engine/colors"
	"github.com/hubastard/grove-toolkit/engine/core"
	"github.com/hubastard/grove-toolkit/engine/gfx/renderer2d"
	"github.com/hubastard/grove-toolkit/engine/profiler"
	"github.com/hubastard/grove-toolkit/engine/scene"
	"github.com/hubastard/grove-toolkit/engine/text"
)

const (
	debugTextSize = 14
	debugPanelW   = 340
	debugPad      = 12
)

type debugLine struct {
	text   string
	header bool
}

// LayerDebug draws engine and store statistics over the demo. F1 toggles
// it; Ctrl+P dumps the profiler.
type LayerDebug struct {
	cam           *scene.OrthoCamera2D
	r2d           *renderer2d.Renderer2D
	font          *text.Font
	demo          *LayerDemo
	visible       bool
	frameDuration float32
	lines         []debugLine
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreen2D(w, h)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) collect(e *core.Engine) {
	stats := l.demo.stats
	st := l.demo.store.Snapshot()
	fr := l.demo.last
	fps := float32(0)
	if l.frameDuration > 0 {
		fps = 1000.0 / l.frameDuration
	}
	head := func(s string) { l.lines = append(l.lines, debugLine{s, true}) }
	line := func(format string, args ...any) {
		l.lines = append(l.lines, debugLine{fmt.Sprintf("  "+format, args...), false})
	}

	l.lines = l.lines[:0]
	head(fmt.Sprintf("Frame: %d", e.Frame()))
	line("%2.3f ms (%.2f FPS)", l.frameDuration, fps)
	line("Pass %d: animated=%v hovered=%v", fr.Number, fr.Animated, fr.Hovered)
	line("changed=%v repaint=%v", fr.Changed, fr.RepaintRequested)
	head("Store")
	line("flag: %v  choice: %s", st.Flag, st.Choice)
	line("magnitude: %.1f  animating: %v", st.Magnitude, st.Animating)
	line("tint: %.2f %.2f %.2f %.2f", st.Tint[0], st.Tint[1], st.Tint[2], st.Tint[3])
	line("text: %q", st.Text)
	head("2D Renderer")
	line("Draw Calls: %d", stats.DrawCalls)
	line("Quads: %d", stats.QuadCount)
	line("Vertices: %d", stats.TotalVertexCount())
	line("Textures: %d", stats.TextureCount)
	head("Memory")
	line("Usage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20))
	line("Allocs: %d", profiler.MemoryAllocs())
	line("Goroutines: %d", profiler.NumGoroutine())
	head("CPU")
	line("Count: %d", profiler.NumCPU())
	head("GPU")
	line("Vendor: %s", e.Renderer.GPUVendor())
	line("Renderer: %s", e.Renderer.GPURenderer())
	line("Version: %s", e.Renderer.GPUVersion())
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if !l.visible {
		return
	}
	end := profiler.Start("LayerDebug.OnRender")
	defer end()

	l.collect(e)
	lh := text.LineHeight(l.font) * debugTextSize / l.font.SizePx
	panelH := float32(len(l.lines))*lh + 2*debugPad
	x := l.cam.Width() - debugPanelW - debugPad
	y := float32(debugPad)

	l.r2d.BeginScene(l.cam.VP())
	l.r2d.DrawQuad(x+debugPanelW*0.5, y+panelH*0.5, debugPanelW, panelH, colors.Black.WithAlpha(0.6), 0)
	ty := y + debugPad
	for _, ln := range l.lines {
		c := colors.White
		if ln.header {
			c = colors.Yellow
		}
		text.DrawText(l.r2d, l.font, x+debugPad, ty, ln.text, debugTextSize, c)
		ty += lh
	}
	l.r2d.EndScene()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if !v.Down {
			return false
		}
		if v.Key == core.KeyF1 && !v.Repeat {
			l.visible = !l.visible
			return true
		}
		if v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.OpenProfilerGraph(); err != nil {
				log.Printf("profiler dump: %v", err)
			} else if path != "" {
				log.Printf("speedscope dump: %s", path)
			}
			return true
		}
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}
