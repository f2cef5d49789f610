// rpgedemo loads a scene from an RPS file (or falls back to a small
// procedural room) and walks it with a raycast camera controlled by WASD
// and the arrow keys.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bwilk315/rpge-go/engine"
	"github.com/bwilk315/rpge-go/enginebiten"
	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/raycaster"
	"github.com/bwilk315/rpge-go/scene"
)

const (
	keyForward Key = iota
	keyBack
	keyStrafeLeft
	keyStrafeRight
	keyTurnLeft
	keyTurnRight
	keyToggleLight
)

// Key is a local alias so this file's key constants read naturally; engine
// itself only ever sees engine.Key.
type Key = engine.Key

const (
	moveSpeed = 2.0 // tiles per second
	turnSpeed = 1.8 // radians per second
)

func main() {
	rpsPath := flag.String("rps", "", "path to an .rps scene file (falls back to a built-in room)")
	screenW := flag.Int("w", 960, "window width")
	screenH := flag.Int("h", 540, "window height")
	square := flag.Bool("square", false, "letterbox the render area to a centered square")
	fov := flag.Float64("fov", math.Pi/2.5, "camera field of view in radians")
	flag.Parse()

	s, cam, err := buildScene(*rpsPath, *fov)
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}

	frame := engine.NewFrame(s, cam)
	frame.SetLight(true, math.Pi/4)

	fitMode := engine.FitStretch
	if *square {
		fitMode = engine.FitSquare
	}

	keyMap := map[engine.Key]ebiten.Key{
		keyForward:     ebiten.KeyW,
		keyBack:        ebiten.KeyS,
		keyStrafeLeft:  ebiten.KeyA,
		keyStrafeRight: ebiten.KeyD,
		keyTurnLeft:    ebiten.KeyArrowLeft,
		keyTurnRight:   ebiten.KeyArrowRight,
		keyToggleLight: ebiten.KeyL,
	}

	game := enginebiten.NewGame(frame, *screenW, *screenH, fitMode, keyMap)

	ebiten.SetWindowSize(*screenW, *screenH)
	ebiten.SetWindowTitle("rpgedemo")

	updater := &demoUpdater{frame: frame, camera: cam, lightOn: true}
	game2 := &driverGame{Game: game, updater: updater}

	if err := ebiten.RunGame(game2); err != nil {
		log.Fatal(err)
	}
}

// driverGame wraps enginebiten.Game to apply camera movement from key
// states before the embedded Frame ticks.
type driverGame struct {
	*enginebiten.Game
	updater *demoUpdater
}

func (g *driverGame) Update() error {
	g.updater.apply(1.0 / float64(ebiten.TPS()))
	return g.Game.Update()
}

type demoUpdater struct {
	frame   *engine.Frame
	camera  *raycaster.Camera
	lightOn bool
}

func (u *demoUpdater) apply(dt float64) {
	f := u.frame
	c := u.camera

	forward := c.Direction().Scale(moveSpeed * dt)
	right := c.Direction().Rotate(-math.Pi / 2).Scale(moveSpeed * dt)

	if isHeld(f, keyForward) {
		c.ChangePosition(forward)
	}
	if isHeld(f, keyBack) {
		c.ChangePosition(forward.Scale(-1))
	}
	if isHeld(f, keyStrafeLeft) {
		c.ChangePosition(right.Scale(-1))
	}
	if isHeld(f, keyStrafeRight) {
		c.ChangePosition(right)
	}
	if isHeld(f, keyTurnLeft) {
		c.ChangeDirection(turnSpeed * dt)
	}
	if isHeld(f, keyTurnRight) {
		c.ChangeDirection(-turnSpeed * dt)
	}
	if f.KeyState(keyToggleLight) == engine.KeyDown {
		u.lightOn = !u.lightOn
		f.SetLight(u.lightOn, math.Pi/4)
	}

	c.Advance(float32(dt))
}

func isHeld(f *engine.Frame, k engine.Key) bool {
	switch f.KeyState(k) {
	case engine.KeyDown, engine.KeyPressed:
		return true
	default:
		return false
	}
}

func buildScene(rpsPath string, fov float64) (*scene.Scene, *raycaster.Camera, error) {
	if rpsPath != "" {
		s, err := scene.LoadRPS(rpsPath)
		if err != nil {
			return nil, nil, err
		}
		return s, raycaster.NewCamera(geom.Vec2{X: float64(s.Width()) / 2, Y: float64(s.Height()) / 2}, 0, fov), nil
	}
	return builtinRoom(), raycaster.NewCamera(geom.Vec2{X: 2.5, Y: 2.5}, 0, fov), nil
}

// builtinRoom is a small bordered room with a single red diagonal wall in
// tile (3,3) near the middle, used when no .rps file is given. The north/south border rows use a flat
// wall (slope 0), cleanly hit by rays crossing into them vertically; the
// east/west border columns use a diagonal wall (slope 1) instead of
// attempting to fake a vertical one, since a ray approaching a border tile
// from the side would never intersect a slope-0 wall (see column.go's
// intersect doc comment) and an exactly vertical wall has no slope at all.
func builtinRoom() *scene.Scene {
	s := scene.New(6, 6)
	white := color.NRGBA{220, 220, 220, 255}
	red := color.NRGBA{200, 60, 60, 255}

	flat := geom.NewLinearFunc(0, 0, 0, 1, 0, 1)
	diag := geom.NewLinearFunc(1, 0, 0, 1, 0, 1)

	s.AddWall(1, scene.NewWall(flat, white, 0, 1, 0, true))
	s.AddWall(2, scene.NewWall(diag, white, 0, 1, 0, true))

	for x := 0; x < 6; x++ {
		s.SetTileID(x, 0, 1)
		s.SetTileID(x, 5, 1)
	}
	for y := 1; y < 5; y++ {
		s.SetTileID(0, y, 2)
		s.SetTileID(5, y, 2)
	}

	s.SetTileID(3, 3, 3)
	s.AddWall(3, scene.NewWall(geom.NewLinearFunc(1, 0, 0, 1, 0, 1), red, 0, 1, 0, true))

	return s
}
