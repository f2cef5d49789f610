// Package engine drives the per-frame loop that turns a Scene and a Camera
// into pixels: key-state bookkeeping, render-area fitting, column-by-column
// casting, and directional lighting. It is rendering-backend agnostic; a
// Host supplies the actual pixel sink and input source.
package engine

import (
	"math"
	"runtime"
	"sync"

	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/internal/xmath"
	"github.com/bwilk315/rpge-go/raycaster"
	"github.com/bwilk315/rpge-go/scene"
)

// ConfigError reports misconfiguration as an OR-able bitmask, mirroring the
// original engine's habit of accumulating errors rather than failing fast
// mid-frame.
type ConfigError int

const (
	ErrClear           ConfigError = 0
	ErrNoCamera        ConfigError = 1 << 1
	ErrNoScene         ConfigError = 1 << 2
	ErrEmptyRenderArea ConfigError = 1 << 3
)

// RenderFitMode controls how the render area is sized relative to the
// host's screen.
type RenderFitMode int

const (
	FitUnknown RenderFitMode = iota
	// FitStretch uses the entire screen as the render area.
	FitStretch
	// FitSquare letterboxes the render area to the largest centered square
	// that fits the screen.
	FitSquare
)

// Rect is a pixel-space render area, top-left origin.
type Rect struct {
	X, Y, W, H int
}

// Host is the platform boundary: it supplies the screen dimensions and
// currently-down keys, and receives the pixels a Frame paints.
type Host interface {
	raycaster.PixelWriter
	ScreenSize() (width, height int)
	KeysDown() map[Key]struct{}
}

// Frame is a rendering session bound to one Scene and one Camera. Create
// one per level or per game state; call Tick once per host frame.
type Frame struct {
	scene  *scene.Scene
	camera *raycaster.Camera

	renderArea    Rect
	fitMode       RenderFitMode
	columnsPerRay int
	rowsInterval  int
	concurrency   int

	light raycaster.Light

	keyStates map[Key]KeyState
	frameIdx  uint64
	elapsed   float64

	err ConfigError
}

// NewFrame builds a Frame for s viewed through cam. Call SetRenderFitMode
// before the first Tick to establish a render area.
func NewFrame(s *scene.Scene, cam *raycaster.Camera) *Frame {
	f := &Frame{
		scene:         s,
		camera:        cam,
		columnsPerRay: 1,
		rowsInterval:  1,
		concurrency:   runtime.GOMAXPROCS(0),
		keyStates:     make(map[Key]KeyState),
	}
	if s == nil {
		f.err |= ErrNoScene
	}
	if cam == nil {
		f.err |= ErrNoCamera
	}
	return f
}

func (f *Frame) Error() ConfigError { return f.err }
func (f *Frame) FrameCount() uint64 { return f.frameIdx }
func (f *Frame) ElapsedTime() float64 { return f.elapsed }
func (f *Frame) RenderArea() Rect   { return f.renderArea }

// KeyState reports the lifecycle state of k as of the last Tick.
func (f *Frame) KeyState(k Key) KeyState {
	if s, ok := f.keyStates[k]; ok {
		return s
	}
	return KeyUnknown
}

// SetColumnsPerRay makes one cast ray supply pixel data for the next n-1
// screen columns, clamped to the render area's width.
func (f *Frame) SetColumnsPerRay(n int) {
	f.columnsPerRay = xmath.Clamp(n, 1, max(1, f.renderArea.W))
}

// SetRowsInterval makes one computed row supply pixel data for the next
// n-1 rows below it, clamped to the render area's height.
func (f *Frame) SetRowsInterval(n int) {
	f.rowsInterval = xmath.Clamp(n, 1, max(1, f.renderArea.H))
}

// SetConcurrency bounds how many screen columns Tick casts in parallel.
// Defaults to GOMAXPROCS. A value of 1 casts columns serially.
func (f *Frame) SetConcurrency(n int) {
	f.concurrency = max(1, n)
}

// SetLight enables or disables the single directional light and sets the
// angle (radians, counter-clockwise from +X) of the direction it travels:
// surfaces whose normal points against that direction are lit brightest.
func (f *Frame) SetLight(enabled bool, angle float64) {
	f.light = raycaster.Light{Enabled: enabled, Dir: geom.Right.Rotate(angle)}
}

// SetRenderFitMode computes the render area for a screenW x screenH host
// screen under mode. Must be called at least once, typically whenever the
// host's screen size changes.
func (f *Frame) SetRenderFitMode(mode RenderFitMode, screenW, screenH int) {
	if f.camera == nil && mode != FitUnknown {
		f.err |= ErrNoCamera
		return
	}
	f.fitMode = mode
	switch mode {
	case FitStretch:
		f.renderArea = Rect{0, 0, screenW, screenH}
	case FitSquare:
		if screenW > screenH {
			f.renderArea = Rect{(screenW - screenH) / 2, 0, screenH, screenH}
		} else {
			f.renderArea = Rect{0, (screenH - screenW) / 2, screenW, screenW}
		}
	}
	if f.renderArea.W <= 0 || f.renderArea.H <= 0 {
		f.err |= ErrEmptyRenderArea
	}
}

// Tick advances key-state bookkeeping by one step, then casts one column
// per screen column (subject to SetColumnsPerRay) into host. Columns are
// independent of one another and are cast by a bounded pool of goroutines,
// each writing its own disjoint slice of host's pixels.
func (f *Frame) Tick(dt float64, host Host) {
	f.elapsed = dt
	advanceKeyStates(f.keyStates, host.KeysDown())

	if f.err != ErrClear {
		return
	}

	screenW, screenH := host.ScreenSize()
	maxDist := maxCastDistance(f.scene)

	ra := f.renderArea
	sem := make(chan struct{}, f.concurrency)
	var wg sync.WaitGroup
	for column := ra.X; column < ra.X+ra.W; column += f.columnsPerRay {
		column := column
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			dda := raycaster.NewDDA(f.scene, maxDist)
			var opaque raycaster.OpaqueRange
			raycaster.CastColumn(
				f.camera, f.scene, dda, &opaque,
				column, ra.X, ra.Y, ra.W, ra.H,
				f.columnsPerRay, f.rowsInterval,
				screenW, screenH,
				f.light, host,
			)
		}()
	}
	wg.Wait()

	f.frameIdx++
}

// maxCastDistance bounds how far a ray may travel before the DDA walk
// reports FlagTooFar: the scene's diagonal is the farthest any tile can be
// from another, so doubling it leaves generous margin for off-center rays.
func maxCastDistance(s *scene.Scene) float64 {
	if s == nil {
		return 1
	}
	d := math.Hypot(float64(s.Width()), float64(s.Height()))
	if d < 1 {
		return 1
	}
	return d * 2
}

