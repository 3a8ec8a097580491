package main

import (
	"fmt"
	"log"

	"github.com/hubastard/grove-toolkit/demo"
	"github.com/hubastard/grove-toolkit/engine/core"
	"github.com/hubastard/grove-toolkit/engine/gfx/renderer2d"
	"github.com/hubastard/grove-toolkit/engine/profiler"
	"github.com/hubastard/grove-toolkit/engine/scene"
	"github.com/hubastard/grove-toolkit/engine/text"
	"github.com/hubastard/grove-toolkit/engine/ui"
)

// LayerDemo runs one synchronization pass per rendered frame.
type LayerDemo struct {
	cam   *scene.OrthoCamera2D
	r2d   *renderer2d.Renderer2D
	ctx   *ui.Ctx
	input ui.Input
	store *demo.Store
	sync  *demo.Synchronizer
	theme ui.Theme

	last  demo.Frame
	stats renderer2d.Statistics
}

func NewLayerDemo(r2d *renderer2d.Renderer2D, font *text.Font, style ui.Style, theme ui.Theme) (*LayerDemo, error) {
	sync, err := demo.NewSynchronizer(demo.DefaultBindings())
	if err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}
	ctx := ui.New(style, 1024)
	ctx.R = text.Painter{R2D: r2d, Font: font}
	ctx.SetTheme(theme)
	return &LayerDemo{
		r2d:   r2d,
		ctx:   ctx,
		store: demo.NewStore(),
		sync:  sync,
		theme: theme,
	}, nil
}

func (l *LayerDemo) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreen2D(w, h)
	e.ClearColor = l.ctx.Visuals().Background
}

func (l *LayerDemo) OnDetach(e *core.Engine) {}

func (l *LayerDemo) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDemo) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("LayerDemo.OnRender")
	defer end()

	l.readInput(e)
	l.r2d.BeginScene(l.cam.VP())
	l.ctx.BeginFrame(&l.input, 0, 0, l.cam.Width(), l.cam.Height())

	endPass := profiler.Start("demo.Pass")
	l.last = l.sync.Pass(l.ctx, l.store)
	endPass()

	l.ctx.EndFrame()
	l.r2d.EndScene()
	l.stats = l.r2d.Stats()

	if t := l.ctx.Theme(); t != l.theme {
		l.theme = t
		e.ClearColor = l.ctx.Visuals().Background
		log.Printf("theme: %s", t)
		// this frame was cleared with the old background
		e.RequestRedraw()
	}
	if l.last.RepaintRequested || l.ctx.RepaintRequested() {
		e.RequestRedraw()
	}
}

func (l *LayerDemo) readInput(e *core.Engine) {
	in := e.Input
	mx, my := in.Mouse()
	l.input = ui.Input{
		MouseX:        float32(mx),
		MouseY:        float32(my),
		MouseDown:     in.MouseDown(core.MouseLeft),
		MousePressed:  in.MousePressed(core.MouseLeft),
		MouseReleased: in.MouseReleased(core.MouseLeft),
		Chars:         in.Chars(),
		Backspace:     in.KeyPressed(core.KeyBackspace),
		Enter:         in.KeyPressed(core.KeyEnter),
		Escape:        in.KeyPressed(core.KeyEscape),
		Time:          e.Uptime().Seconds(),
	}
}

func (l *LayerDemo) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}
