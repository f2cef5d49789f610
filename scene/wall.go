package scene

import (
	"image/color"

	"github.com/bwilk315/rpge-go/geom"
)

// Wall is one oblique wall segment inside a tile, expressed as a bounded
// linear function in the tile's local [0,1]^2 coordinates.
type Wall struct {
	Func      geom.LinearFunc
	Pivot     geom.Vec2
	Length    float64
	HMin, HMax float64
	Tint      color.NRGBA
	TexID     uint16 // 0 = untextured, render with Tint
	BlocksRay bool
}

// NewWall builds a wall and computes its Pivot/Length from Func.
func NewWall(f geom.LinearFunc, tint color.NRGBA, hMin, hMax float64, texID uint16, blocksRay bool) *Wall {
	w := &Wall{
		Func: f, Tint: tint,
		HMin: hMin, HMax: hMax,
		TexID: texID, BlocksRay: blocksRay,
	}
	w.UpdateMetrics()
	return w
}

// UpdateMetrics recomputes Pivot and Length from Func. Call it whenever Func
// is mutated directly instead of through NewWall.
func (w *Wall) UpdateMetrics() {
	a := w.Func.Endpoint(w.Func.XMin)
	b := w.Func.Endpoint(w.Func.XMax)
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	w.Pivot = a
	w.Length = b.Sub(a).Magnitude()
}
