package raycaster

import (
	"math"
	"testing"

	"github.com/bwilk315/rpge-go/geom"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCameraDirectionAndPlaneStayOrthogonal(t *testing.T) {
	angles := []float64{0, 0.3, math.Pi / 2, math.Pi, -math.Pi / 2, 2.1}
	for _, a := range angles {
		c := NewCamera(geom.Zero, a, math.Pi/2)
		dot := c.Direction().Dot(c.Plane())
		if !almostEqual(dot, 0, 1e-6) {
			t.Fatalf("angle %v: direction . plane = %v, want ~0", a, dot)
		}
	}
}

func TestCameraDirectionIsUnitLength(t *testing.T) {
	c := NewCamera(geom.Zero, 1.2, math.Pi/2)
	if !almostEqual(c.Direction().Magnitude(), 1, 1e-6) {
		t.Fatalf("direction magnitude: got %v, want 1", c.Direction().Magnitude())
	}
}

func TestCameraFieldOfViewIsClamped(t *testing.T) {
	c := NewCamera(geom.Zero, 0, 100)
	if c.FieldOfView() != MaxFOV {
		t.Fatalf("got %v, want MaxFOV %v", c.FieldOfView(), MaxFOV)
	}
	c.SetFieldOfView(-5)
	if c.FieldOfView() != MinFOV {
		t.Fatalf("got %v, want MinFOV %v", c.FieldOfView(), MinFOV)
	}
}

func TestCameraPlaneMagnitudeTracksFieldOfView(t *testing.T) {
	c := NewCamera(geom.Zero, 0, math.Pi/2)
	wantMag := math.Tan(math.Pi / 4)
	if !almostEqual(c.Plane().Magnitude(), wantMag, 1e-6) {
		t.Fatalf("plane magnitude: got %v, want %v", c.Plane().Magnitude(), wantMag)
	}
}

func TestCameraChangePositionAccumulates(t *testing.T) {
	c := NewCamera(geom.Vec2{X: 1, Y: 1}, 0, math.Pi/2)
	c.ChangePosition(geom.Vec2{X: 2, Y: -1})
	if c.Position() != (geom.Vec2{X: 3, Y: 0}) {
		t.Fatalf("position: got %v, want (3,0)", c.Position())
	}
}

func TestCameraChangeDirectionRotatesBothVectors(t *testing.T) {
	c := NewCamera(geom.Zero, 0, math.Pi/2)
	before := c.Direction()
	c.ChangeDirection(math.Pi / 4)
	after := c.Direction()
	if almostEqual(before.X, after.X, 1e-6) && almostEqual(before.Y, after.Y, 1e-6) {
		t.Fatal("ChangeDirection should rotate the direction vector")
	}
	if !almostEqual(after.Dot(c.Plane()), 0, 1e-6) {
		t.Fatal("direction and plane should remain orthogonal after ChangeDirection")
	}
}

func TestCameraAxisAlignedDirectionAvoidsSingularity(t *testing.T) {
	c := NewCamera(geom.Zero, math.Pi/2, math.Pi/2)
	if c.Direction().X == 0 {
		t.Fatal("direction.X should be biased away from exactly 0 at angle pi/2")
	}
}
