package main

import (
	"log"
	"time"

	"github.com/hubastard/grove-toolkit/engine/assets"
	"github.com/hubastard/grove-toolkit/engine/core"
	glbackend "github.com/hubastard/grove-toolkit/engine/gfx/gl"
	"github.com/hubastard/grove-toolkit/engine/gfx/renderer2d"
	"github.com/hubastard/grove-toolkit/engine/platform"
	"github.com/hubastard/grove-toolkit/engine/profiler"
	"github.com/hubastard/grove-toolkit/engine/text"
	"github.com/hubastard/grove-toolkit/engine/ui"
)

type App struct {
	cfg        Config
	lastFrame  time.Time
	r2d        *renderer2d.Renderer2D
	font       *text.Font
	demoLayer  *LayerDemo
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(a.cfg.Debug.ProfilerSamples)

	var err error
	a.r2d, err = renderer2d.New(e.Renderer, 10000)
	if err != nil {
		log.Fatalf("renderer2d: %v", err)
	}

	a.font, err = a.loadFont(e)
	if err != nil {
		log.Fatalf("font: %v", err)
	}

	style := ui.DefaultStyle().Scaled(a.cfg.UI.FontSize / ui.DefaultStyle().FontSize)
	a.demoLayer, err = NewLayerDemo(a.r2d, a.font, style, a.cfg.Theme())
	if err != nil {
		log.Fatalf("demo layer: %v", err)
	}
	e.PushLayer(a.demoLayer)

	a.debugLayer = &LayerDebug{r2d: a.r2d, font: a.font, demo: a.demoLayer, visible: a.cfg.Debug.Overlay}
	e.PushLayer(a.debugLayer)

	log.Printf("GPU: %s / %s (%s)", e.Renderer.GPUVendor(), e.Renderer.GPURenderer(), e.Renderer.GPUVersion())
}

// loadFont rasterizes at twice the UI size so scaled-down glyphs stay sharp.
func (a *App) loadFont(e *core.Engine) (*text.Font, error) {
	size := 2 * a.cfg.UI.FontSize
	if a.cfg.UI.FontFile == "" {
		return text.LoadDefault(e.Renderer, size)
	}
	ttf, err := assets.LoadFont(a.cfg.UI.FontFile)
	if err != nil {
		return nil, err
	}
	return text.Load(e.Renderer, ttf, size)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	// Calculate frame duration
	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
	}
	a.lastFrame = now
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	if err := a.font.Close(); err != nil {
		log.Printf("font close: %v", err)
	}
}

func main() {
	cfg, path, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if path != "" {
		log.Printf("config: %s", path)
	}
	app := &App{cfg: cfg}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		if err != nil {
			return nil, err
		}
		win = w
		if path := app.cfg.Window.Icon; path != "" {
			if icon, err := assets.LoadPNG(path); err != nil {
				log.Printf("window icon: %v", err)
			} else {
				w.SetIcon(icon)
			}
		}
		return w, nil
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	err = core.Run(app, cfg.Core(), newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}
