//go:build profile

package profiler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Init must be called once (e.g., on app start) with a capacity (#events).
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

func Enabled() bool { return ring.ready.Load() }

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	fid := intern(name)
	start := time.Now().UnixNano()
	ring.push(event{atNS: start, frame: fid, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < start {
			end = start
		}
		ring.push(event{atNS: end, frame: fid})
	}
}

// OpenProfilerGraph writes the captured scopes to a speedscope file and
// launches the viewer on it. The file path is returned even if the viewer
// could not be started.
func OpenProfilerGraph() (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", fmt.Errorf("profiler: no events to dump")
	}

	path := filepath.Join(os.TempDir(), "grove-toolkit.speedscope.json")
	if err := writeSpeedscope(evs, frameNames(), path); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", path)
	cmd.SysProcAttr = viewerProcAttr()
	if err := cmd.Start(); err != nil {
		return path, fmt.Errorf("launch speedscope: %w", err)
	}
	return path, nil
}

// ---------- event ring ----------

type event struct {
	atNS  int64
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]event, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot preserves write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var ring eventRing

// ---------- scope name interner ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}

func frameNames() []string {
	muFrames.Lock()
	defer muFrames.Unlock()
	return append([]string(nil), frames...)
}
