// Package enginebiten implements engine.Host on top of ebiten/v2, so a
// Scene+Camera+Frame combination can be driven by a real window.
package enginebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bwilk315/rpge-go/engine"
)

// Adapter is an engine.Host backed by a CPU-side RGBA buffer and ebiten's
// keyboard polling. A Frame paints into the buffer during Tick; Present
// blits it onto an ebiten.Image in one call instead of per-pixel Set,
// which on ebiten is orders of magnitude slower for a full raycast frame.
type Adapter struct {
	buf    *image.RGBA
	keyMap map[engine.Key]ebiten.Key
}

// NewAdapter builds an Adapter sized to width x height, translating engine
// keys to ebiten keys through keyMap.
func NewAdapter(width, height int, keyMap map[engine.Key]ebiten.Key) *Adapter {
	return &Adapter{
		buf:    image.NewRGBA(image.Rect(0, 0, width, height)),
		keyMap: keyMap,
	}
}

func (a *Adapter) ScreenSize() (int, int) {
	b := a.buf.Bounds()
	return b.Dx(), b.Dy()
}

func (a *Adapter) SetPixel(x, y int, c color.NRGBA) {
	b := a.buf.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	a.buf.Set(x, y, c)
}

// KeysDown reports which engine keys are currently pressed, per ebiten's
// IsKeyPressed, restricted to keyMap's domain.
func (a *Adapter) KeysDown() map[engine.Key]struct{} {
	down := make(map[engine.Key]struct{}, len(a.keyMap))
	for gk, ek := range a.keyMap {
		if ebiten.IsKeyPressed(ek) {
			down[gk] = struct{}{}
		}
	}
	return down
}

// Resize replaces the backing buffer when the window size changes. Pixels
// from the previous size are discarded; the next Tick repaints everything.
func (a *Adapter) Resize(width, height int) {
	b := a.buf.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	a.buf = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Present copies the buffer onto screen, which must be exactly the
// Adapter's current size.
func (a *Adapter) Present(screen *ebiten.Image) {
	screen.WritePixels(a.buf.Pix)
}
