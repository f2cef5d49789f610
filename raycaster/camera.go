package raycaster

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/internal/xmath"
)

// Bias and clamp constants carried over from the original camera model.
const (
	// DirBias nudges the direction and plane vectors off their exact
	// axis-aligned angles so a wall's slope or a ray's reciprocal never
	// divides by zero.
	DirBias = 0.0001
	MinFOV  = 0.01
	MaxFOV  = math.Pi - 0.01
)

// Camera holds the viewer's position, looking direction, and half-plane
// vector used to fan rays across the screen width. direction and plane stay
// perpendicular by construction: every mutator derives plane from direction
// (or vice versa) rather than letting them drift independently.
type Camera struct {
	position  geom.Vec2
	direction geom.Vec2
	plane     geom.Vec2

	fieldOfView    float64
	planeMagnitude float64
	angle          float64

	fovTween *gween.Tween
	dirTween *gween.Tween
	dirFrom  float64
	dirTo    float64
}

// NewCamera builds a camera at position, looking at viewAngle radians
// (counter-clockwise from the positive X axis), with the given field of
// view in radians.
func NewCamera(position geom.Vec2, viewAngle, fieldOfView float64) *Camera {
	c := &Camera{position: position}
	c.SetFieldOfView(fieldOfView)
	c.SetDirection(viewAngle)
	return c
}

func (c *Camera) Position() geom.Vec2     { return c.position }
func (c *Camera) Direction() geom.Vec2    { return c.direction }
func (c *Camera) Plane() geom.Vec2        { return c.plane }
func (c *Camera) FieldOfView() float64    { return c.fieldOfView }
func (c *Camera) Angle() float64          { return c.angle }

// SetPosition moves the camera to an absolute position.
func (c *Camera) SetPosition(position geom.Vec2) {
	c.position = position
}

// ChangePosition offsets the camera's position by delta.
func (c *Camera) ChangePosition(delta geom.Vec2) {
	c.position = c.position.Add(delta)
}

// ChangeDirection rotates direction and plane by radians counter-clockwise,
// without passing through SetDirection's axis bias.
func (c *Camera) ChangeDirection(radians float64) {
	c.direction = c.direction.Rotate(radians)
	c.plane = c.plane.Rotate(radians)
	c.angle += radians
}

// SetDirection points the camera at an absolute angle, radians
// counter-clockwise from the positive X axis. At exactly 0, +-pi/2 or pi one
// of the two vectors would otherwise land on an axis-aligned line, so the
// angle is nudged by DirBias before both vectors are derived from it, which
// keeps them perpendicular.
func (c *Camera) SetDirection(radians float64) {
	c.angle = radians

	biased := radians
	if radians == 0 || math.Abs(radians) == math.Pi/2 || radians == math.Pi {
		biased += DirBias
	}
	c.direction = geom.Right.Rotate(biased)
	c.plane = geom.Down.Rotate(biased).Scale(c.planeMagnitude)
}

// SetFieldOfView sets the field of view, clamped to [MinFOV,MaxFOV], and
// rescales plane to the new half-plane magnitude while keeping its
// direction.
func (c *Camera) SetFieldOfView(radians float64) {
	c.fieldOfView = xmath.Clamp(radians, MinFOV, MaxFOV)

	if c.planeMagnitude != 0 {
		c.plane = c.plane.Scale(1 / c.planeMagnitude)
	}
	c.planeMagnitude = math.Tan(c.fieldOfView / 2)
	c.plane = c.plane.Scale(c.planeMagnitude)
}

// TransitionFieldOfView starts an eased transition from the current field of
// view to target over duration seconds. Advance must be called every frame
// for the transition to progress.
func (c *Camera) TransitionFieldOfView(target float64, duration float32, fn ease.TweenFunc) {
	c.fovTween = gween.New(float32(c.fieldOfView), float32(target), duration, fn)
}

// TransitionDirection starts an eased transition from the current looking
// angle to target radians over duration seconds.
func (c *Camera) TransitionDirection(target float64, duration float32, fn ease.TweenFunc) {
	c.dirFrom = c.angle
	c.dirTo = target
	c.dirTween = gween.New(float32(c.angle), float32(target), duration, fn)
}

// Advance steps any active transitions by dt seconds, applying their
// interpolated values through SetFieldOfView/SetDirection.
func (c *Camera) Advance(dt float32) {
	if c.fovTween != nil {
		val, done := c.fovTween.Update(dt)
		c.SetFieldOfView(float64(val))
		if done {
			c.fovTween = nil
		}
	}
	if c.dirTween != nil {
		val, done := c.dirTween.Update(dt)
		c.SetDirection(float64(val))
		if done {
			c.dirTween = nil
		}
	}
}
