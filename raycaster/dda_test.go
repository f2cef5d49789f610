package raycaster

import (
	"math"
	"testing"

	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/scene"
)

func TestDDAWalksEmptySceneUntilOutside(t *testing.T) {
	s := scene.New(4, 4)
	d := NewDDA(s, 100)
	d.Init(geom.Vec2{X: 0.5, Y: 0.5}, geom.Vec2{X: 1, Y: 0})

	hits := 0
	for {
		d.Next()
		if d.Flag&FlagOutside != 0 || d.Flag&FlagTooFar != 0 || d.Flag&FlagFail != 0 {
			break
		}
		hits++
		if hits > 10 {
			t.Fatal("DDA did not leave the 4x4 scene")
		}
	}
}

func TestDDAReportsHitOnOccupiedTile(t *testing.T) {
	s := scene.New(4, 4)
	s.SetTileID(3, 0, 1)
	d := NewDDA(s, 100)
	d.Init(geom.Vec2{X: 0.5, Y: 0.5}, geom.Vec2{X: 1, Y: 0})

	var last RayHit
	for {
		h := d.Next()
		if d.Flag&FlagHit != 0 {
			last = h
			break
		}
		if d.Flag&FlagOutside != 0 || d.Flag&FlagTooFar != 0 {
			t.Fatal("expected a hit before leaving the scene")
		}
	}
	if last.TileX != 3 || last.TileY != 0 {
		t.Fatalf("hit tile: got (%d,%d), want (3,0)", last.TileX, last.TileY)
	}
}

func TestDDADistanceIsMonotonicAlongRay(t *testing.T) {
	s := scene.New(8, 8)
	d := NewDDA(s, 100)
	d.Init(geom.Vec2{X: 0.1, Y: 0.1}, geom.Vec2{X: 1, Y: 0.3})

	prev := -1.0
	for i := 0; i < 6; i++ {
		h := d.Next()
		if d.Flag&(FlagOutside|FlagTooFar|FlagFail) != 0 {
			break
		}
		if h.Distance < prev {
			t.Fatalf("distance decreased: step %d got %v after %v", i, h.Distance, prev)
		}
		prev = h.Distance
	}
}

func TestDDATieBreakFavorsX(t *testing.T) {
	s := scene.New(4, 4)
	d := NewDDA(s, 100)
	d.Init(geom.Vec2{X: 0.5, Y: 0.5}, geom.Vec2{X: 1, Y: 1}.Normalized())
	d.Next() // origin tile

	h := d.Next()
	if h.Side != AxisX {
		t.Fatalf("tie on a diagonal ray should resolve in favor of X, got side %v", h.Side)
	}
}

func TestDDAZeroComponentUsesMaxDD(t *testing.T) {
	s := scene.New(4, 4)
	d := NewDDA(s, 100)
	d.Init(geom.Vec2{X: 0.5, Y: 0.5}, geom.Vec2{X: 1, Y: 0})
	if d.deltaY != MaxDD {
		t.Fatalf("deltaY with zero dir.Y: got %v, want MaxDD", d.deltaY)
	}
	if math.IsInf(d.deltaY, 0) {
		t.Fatal("deltaY must be a large finite sentinel, not Inf")
	}
}
