package core

import "time"

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window     Window
	Renderer   Renderer
	Input      *Input
	Layers     LayerStack
	ClearColor [4]float32

	start  time.Time
	frame  uint64
	redraw bool
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Frame is the number of frames presented so far.
func (e *Engine) Frame() uint64 { return e.frame }

// RequestRedraw asks the scheduler for another pass right after the current one
// instead of sleeping until the next input event.
func (e *Engine) RequestRedraw() { e.redraw = true }

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// Window abstraction.
type Window interface {
	PollEvents()
	WaitEventsTimeout(timeout time.Duration)
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer abstraction. One textured, batched pipeline is enough for 2D UI.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreateTexture(desc TextureDesc) (Texture, error)
	Draw(b Batch)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA

	// Continuous redraws every loop iteration. Otherwise the loop sleeps
	// until an event arrives, a redraw is requested or IdleTimeout elapses.
	Continuous  bool
	IdleTimeout time.Duration
}
