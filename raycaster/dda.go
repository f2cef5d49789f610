// Package raycaster implements the camera, the grid-stepping DDA ray
// walker, the per-column opaque-range bookkeeping, and the column renderer
// that ties them together.
package raycaster

import (
	"math"

	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/scene"
)

// RayFlag reports the outcome of the most recent DDA step.
type RayFlag int

const (
	FlagClear  RayFlag = 0
	FlagHit    RayFlag = 1 << 1
	FlagSide   RayFlag = 1 << 2
	FlagTooFar RayFlag = 1 << 3
	FlagOutside RayFlag = 1 << 4
	FlagFail   RayFlag = 1 << 5
)

// MaxDD is substituted for a delta distance along an axis the ray direction
// has zero component on, standing in for "never crosses another grid line
// on this axis".
const MaxDD = 1e10

// SideAxis names which tile boundary a ray crossed to arrive at a hit.
type SideAxis int

const (
	AxisX SideAxis = iota
	AxisY
)

// RayHit is one tile visited by a DDA walk.
type RayHit struct {
	TileX, TileY int
	Entry        geom.Vec2
	Side         SideAxis
	Distance     float64
}

// DDA steps a ray through a Scene's tile grid one tile at a time. Reusing a
// DDA across rays (via Init) avoids reallocating per-column state.
type DDA struct {
	scene       *scene.Scene
	maxTileDist float64

	initialized bool
	originDone  bool

	startTileX, startTileY int
	px, py                 int
	stepX, stepY           int
	deltaX, deltaY         float64
	sideX, sideY           float64

	start geom.Vec2
	dir   geom.Vec2

	Flag RayFlag
}

// NewDDA creates a walker bound to scene, rejecting tiles farther than
// maxTileDist (in tile units) from the ray origin.
func NewDDA(s *scene.Scene, maxTileDist float64) *DDA {
	return &DDA{scene: s, maxTileDist: maxTileDist}
}

// Init starts a new ray walk from start along dir. dir need not be unit
// length but must be nonzero.
func (d *DDA) Init(start, dir geom.Vec2) {
	if d.scene == nil {
		d.Flag = FlagFail
		d.initialized = false
		return
	}
	d.initialized = true
	d.originDone = false
	d.start = start
	d.dir = dir
	d.Flag = FlagClear

	d.px = geom.FloorToInt(start.X)
	d.py = geom.FloorToInt(start.Y)
	d.startTileX, d.startTileY = d.px, d.py

	if dir.X == 0 {
		d.deltaX = MaxDD
	} else {
		d.deltaX = math.Abs(1 / dir.X)
	}
	if dir.Y == 0 {
		d.deltaY = MaxDD
	} else {
		d.deltaY = math.Abs(1 / dir.Y)
	}

	if dir.X < 0 {
		d.stepX = -1
		d.sideX = (start.X - float64(d.px)) * d.deltaX
	} else {
		d.stepX = 1
		d.sideX = (1 + float64(d.px) - start.X) * d.deltaX
	}
	if dir.Y < 0 {
		d.stepY = -1
		d.sideY = (start.Y - float64(d.py)) * d.deltaY
	} else {
		d.stepY = 1
		d.sideY = (1 + float64(d.py) - start.Y) * d.deltaY
	}
}

// Next advances the walk and returns the next tile hit. Check Flag after
// every call: a RayHit is only meaningful when Flag has the FlagHit bit set.
func (d *DDA) Next() RayHit {
	if !d.initialized {
		d.Flag = FlagFail
		return RayHit{}
	}
	if !d.originDone {
		d.originDone = true
		if d.scene.TileID(d.px, d.py) != 0 {
			d.Flag = FlagHit
		} else {
			d.Flag = FlagClear
		}
		return RayHit{TileX: d.px, TileY: d.py, Entry: d.start, Side: AxisX, Distance: 0}
	}

	var side SideAxis
	if d.sideX <= d.sideY {
		d.sideX += d.deltaX
		d.px += d.stepX
		d.Flag = FlagSide
		side = AxisX
	} else {
		d.sideY += d.deltaY
		d.py += d.stepY
		d.Flag = FlagClear
		side = AxisY
	}

	dx := float64(d.px - d.startTileX)
	dy := float64(d.py - d.startTileY)
	if dx*dx+dy*dy > d.maxTileDist*d.maxTileDist {
		d.Flag = FlagTooFar
		return RayHit{}
	}
	if !d.scene.InBounds(d.px, d.py) {
		d.Flag = FlagOutside
		return RayHit{}
	}

	if d.scene.TileID(d.px, d.py) != 0 {
		var dist float64
		if side == AxisX {
			dist = d.sideX - d.deltaX
		} else {
			dist = d.sideY - d.deltaY
		}
		d.Flag |= FlagHit
		return RayHit{
			TileX:    d.px,
			TileY:    d.py,
			Entry:    d.start.Add(d.dir.Scale(dist)),
			Side:     side,
			Distance: dist,
		}
	}
	d.Flag = FlagClear
	return RayHit{}
}
