package enginebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bwilk315/rpge-go/engine"
)

// Game implements ebiten.Game by driving a single engine.Frame each
// update and presenting its Adapter each draw.
type Game struct {
	Frame   *engine.Frame
	adapter *Adapter

	screenW, screenH int
	fitMode          engine.RenderFitMode

	showDebug bool
	debugKey  ebiten.Key
}

// NewGame wires frame to an ebiten window of screenW x screenH, fit per
// fitMode, with keyMap translating engine keys to ebiten keys.
func NewGame(frame *engine.Frame, screenW, screenH int, fitMode engine.RenderFitMode, keyMap map[engine.Key]ebiten.Key) *Game {
	frame.SetRenderFitMode(fitMode, screenW, screenH)
	return &Game{
		Frame:    frame,
		adapter:  NewAdapter(screenW, screenH, keyMap),
		screenW:  screenW,
		screenH:  screenH,
		fitMode:  fitMode,
		debugKey: ebiten.KeyF3,
	}
}

// SetDebugKey changes which ebiten key toggles the FPS/TPS overlay.
func (g *Game) SetDebugKey(k ebiten.Key) { g.debugKey = k }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(g.debugKey) {
		g.showDebug = !g.showDebug
	}
	g.Frame.Tick(1.0/float64(ebiten.TPS()), g.adapter)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.adapter.Present(screen)
	if g.showDebug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nframe: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.Frame.FrameCount()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
