package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

const defaultIdleTimeout = 500 * time.Millisecond

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:     win,
		Renderer:   rend,
		Input:      NewInput(),
		ClearColor: cfg.ClearColor,
		start:      time.Now(),
		redraw:     true,
	}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		eng.redraw = true
		eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		// A pending redraw means polling; otherwise sleep until something happens.
		poll := cfg.Continuous || eng.redraw
		eng.redraw = false
		if poll {
			win.PollEvents()
		} else {
			win.WaitEventsTimeout(idle)
		}

		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			app.OnUpdate(eng, dt)
			accum -= tick
			steps++
		}
		if steps == maxStep {
			// Woke up from a long idle wait; drop the backlog.
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		c := eng.ClearColor
		rend.Clear(c[0], c[1], c[2], c[3])
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		win.SwapBuffers()
		eng.Input.EndFrame()
		eng.frame++
	}

	app.OnShutdown(eng)
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	log.Println("Engine exit")
	return nil
}
