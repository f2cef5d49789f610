package engine

import (
	"image"

	gg "github.com/gogpu/gg"
)

// DrawMinimap renders a top-down view of f's scene at cellPx pixels per
// tile: occupied tiles filled gray, the camera as a white dot with a short
// line along its facing direction.
func (f *Frame) DrawMinimap(cellPx float64) image.Image {
	s := f.scene
	w := float64(s.Width()) * cellPx
	h := float64(s.Height()) * cellPx
	dc := gg.NewContext(int(w), int(h))
	dc.SetRGB(0.08, 0.08, 0.08)
	dc.Clear()

	dc.SetRGB(0.6, 0.6, 0.6)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if id := s.TileID(x, y); id != 0 {
				dc.DrawRectangle(float64(x)*cellPx, float64(y)*cellPx, cellPx, cellPx)
				dc.Fill()
			}
		}
	}

	pos := f.camera.Position()
	dir := f.camera.Direction()
	cx, cy := pos.X*cellPx, pos.Y*cellPx
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(cx, cy, cellPx*0.15)
	dc.Fill()
	dc.SetLineWidth(2)
	dc.DrawLine(cx, cy, cx+dir.X*cellPx*0.6, cy+dir.Y*cellPx*0.6)
	dc.Stroke()

	return dc.Image()
}
