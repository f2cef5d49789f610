package engine

import (
	"image/color"
	"math"
	"sync/atomic"
	"testing"

	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/raycaster"
	"github.com/bwilk315/rpge-go/scene"
)

type fakeHost struct {
	w, h   int
	down   map[Key]struct{}
	writes atomic.Int64
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{w: w, h: h, down: map[Key]struct{}{}}
}

func (h *fakeHost) ScreenSize() (int, int)           { return h.w, h.h }
func (h *fakeHost) KeysDown() map[Key]struct{}       { return h.down }
func (h *fakeHost) SetPixel(x, y int, c color.NRGBA) { h.writes.Add(1) }

func TestNewFrameFlagsMissingSceneOrCamera(t *testing.T) {
	if f := NewFrame(nil, raycaster.NewCamera(geom.Zero, 0, math.Pi/2)); f.Error()&ErrNoScene == 0 {
		t.Fatal("missing scene should set ErrNoScene")
	}
	if f := NewFrame(scene.New(2, 2), nil); f.Error()&ErrNoCamera == 0 {
		t.Fatal("missing camera should set ErrNoCamera")
	}
}

func TestSetRenderFitModeStretchFillsScreen(t *testing.T) {
	f := NewFrame(scene.New(3, 3), raycaster.NewCamera(geom.Zero, 0, math.Pi/2))
	f.SetRenderFitMode(FitStretch, 320, 200)
	if f.RenderArea() != (Rect{0, 0, 320, 200}) {
		t.Fatalf("got %+v", f.RenderArea())
	}
}

func TestSetRenderFitModeSquareLetterboxesWideScreen(t *testing.T) {
	f := NewFrame(scene.New(3, 3), raycaster.NewCamera(geom.Zero, 0, math.Pi/2))
	f.SetRenderFitMode(FitSquare, 320, 200)
	want := Rect{60, 0, 200, 200}
	if f.RenderArea() != want {
		t.Fatalf("got %+v, want %+v", f.RenderArea(), want)
	}
}

func TestTickWritesPixelsForOccupiedScene(t *testing.T) {
	s := scene.New(3, 3)
	s.SetTileID(2, 1, 1)
	s.AddWall(1, scene.NewWall(geom.NewLinearFunc(1, 0, 0, 1, 0, 1), color.NRGBA{255, 255, 255, 255}, 0, 1, 0, true))
	cam := raycaster.NewCamera(geom.Vec2{X: 1.5, Y: 1.5}, 0, math.Pi/2)

	f := NewFrame(s, cam)
	f.SetRenderFitMode(FitStretch, 80, 60)

	host := newFakeHost(80, 60)
	f.Tick(1.0/60, host)

	if host.writes.Load() == 0 {
		t.Fatal("expected CastColumn to paint at least one pixel")
	}
	if f.FrameCount() != 1 {
		t.Fatalf("frame count: got %d, want 1", f.FrameCount())
	}
}

func TestTickSkipsRenderingWhenMisconfigured(t *testing.T) {
	f := NewFrame(nil, raycaster.NewCamera(geom.Zero, 0, math.Pi/2))
	host := newFakeHost(80, 60)
	f.Tick(1.0/60, host)
	if host.writes.Load() != 0 {
		t.Fatal("a misconfigured frame should not attempt to render")
	}
	if f.FrameCount() != 0 {
		t.Fatal("frame count should not advance when rendering is skipped")
	}
}

func TestTickConcurrencyDoesNotChangeWriteCount(t *testing.T) {
	build := func() (*Frame, *fakeHost) {
		s := scene.New(3, 3)
		s.SetTileID(2, 1, 1)
		s.AddWall(1, scene.NewWall(geom.NewLinearFunc(1, 0, 0, 1, 0, 1), color.NRGBA{255, 255, 255, 255}, 0, 1, 0, true))
		cam := raycaster.NewCamera(geom.Vec2{X: 1.5, Y: 1.5}, 0, math.Pi/2)
		f := NewFrame(s, cam)
		f.SetRenderFitMode(FitStretch, 80, 60)
		return f, newFakeHost(80, 60)
	}

	serial, serialHost := build()
	serial.SetConcurrency(1)
	serial.Tick(1.0/60, serialHost)

	parallel, parallelHost := build()
	parallel.SetConcurrency(8)
	parallel.Tick(1.0/60, parallelHost)

	if serialHost.writes.Load() != parallelHost.writes.Load() {
		t.Fatalf("serial wrote %d pixels, parallel wrote %d", serialHost.writes.Load(), parallelHost.writes.Load())
	}
}

func TestTickAdvancesKeyStates(t *testing.T) {
	f := NewFrame(scene.New(2, 2), raycaster.NewCamera(geom.Zero, 0, math.Pi/2))
	f.SetRenderFitMode(FitStretch, 10, 10)
	host := newFakeHost(10, 10)
	host.down[1] = struct{}{}

	f.Tick(0.016, host)
	if f.KeyState(1) != KeyDown {
		t.Fatalf("got %v, want KeyDown", f.KeyState(1))
	}
	f.Tick(0.016, host)
	if f.KeyState(1) != KeyPressed {
		t.Fatalf("got %v, want KeyPressed", f.KeyState(1))
	}
}
