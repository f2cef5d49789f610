package raycaster

import (
	"image/color"
	"math"
	"sort"

	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/scene"
	"github.com/bwilk315/rpge-go/texture"
)

// SafeLineHeight substitutes for a wall's height term in the ray/wall
// intercept formula when that height is exactly zero, which would
// otherwise make the ray's own grid-aligned entry point a degenerate root.
const SafeLineHeight = 0.0001

// sqrt2 bounds a candidate intercept: no ray can travel farther than the
// diagonal of a unit tile before leaving it.
const sqrt2 = math.Sqrt2

// minBrightness is the floor a lit surface's color channels are scaled to
// when its normal points directly away from the light.
const minBrightness = 0.2

// Light is the single directional light the column renderer can apply.
type Light struct {
	Enabled bool
	Dir     geom.Vec2 // must be unit length
}

// PixelWriter receives the column renderer's pixel writes. Coordinates are
// in framebuffer (screen) space.
type PixelWriter interface {
	SetPixel(x, y int, c color.NRGBA)
}

type candidate struct {
	wall     *scene.Wall
	perpDist float64
	local    geom.Vec2
}

// localEntry computes a DDA hit's entry point in the coordinate frame of
// the tile it entered: [0,1]x[0,1]. On the exact grid line the ray crossed
// to arrive here, floating point drift is replaced by the ray's direction
// sign, matching the side it must have entered from.
func localEntry(hit RayHit, rayDir geom.Vec2) geom.Vec2 {
	lx := hit.Entry.X - float64(hit.TileX)
	ly := hit.Entry.Y - float64(hit.TileY)
	if hit.Distance == 0 {
		return geom.Vec2{X: lx, Y: ly}
	}
	if hit.Side == AxisX {
		x := 0.0
		if rayDir.X < 0 {
			x = 1
		}
		return geom.Vec2{X: x, Y: ly}
	}
	y := 0.0
	if rayDir.Y < 0 {
		y = 1
	}
	return geom.Vec2{X: lx, Y: y}
}

// intersect solves the ray entryLocal + t*rayDir against wall.Func, and
// reports whether the resulting point t>=0, t<=sqrt2 and lies within the
// wall's domain and range. A zero denominator naturally yields an Inf or
// NaN t, which fails the acceptance checks below exactly as it would in
// any IEEE-754 arithmetic, so no explicit zero-denominator guard is needed.
func intersect(entryLocal, rayDir geom.Vec2, f geom.LinearFunc) (p geom.Vec2, t float64, ok bool) {
	h := f.Height
	if h == 0 {
		h = SafeLineHeight
	}
	denom := rayDir.X*f.Slope - rayDir.Y
	t = (entryLocal.Y - f.Slope*entryLocal.X - h) / denom
	if !(t >= 0 && t <= sqrt2) {
		return geom.Vec2{}, 0, false
	}
	p = entryLocal.Add(rayDir.Scale(t))
	if p.X < f.XMin || p.X > f.XMax || p.Y < f.YMin || p.Y > f.YMax {
		return geom.Vec2{}, 0, false
	}
	return p, t, true
}

// CastColumn walks a single screen column with dda, finds the nearest
// visible wall fragments, and writes their pixels (replicated across a
// columnsPerRay-wide, rowInterval-tall block) to out. r accumulates the
// column's opaque rows across calls from multiple DDA hits and should be
// a fresh OpaqueRange per column.
func CastColumn(
	cam *Camera,
	s *scene.Scene,
	dda *DDA,
	r *OpaqueRange,
	column int,
	renderX, renderY, renderW, renderH int,
	columnsPerRay, rowInterval int,
	screenW, screenH int,
	light Light,
	out PixelWriter,
) {
	camX := 2*float64(column-renderX)/float64(renderW) - 1
	rayDir := cam.Direction().Add(cam.Plane().Scale(camX)).Normalized()
	pcm := 1 / (2 * math.Tan(cam.FieldOfView()/2))

	rhStart := renderY
	rhEnd := renderY + renderH

	dda.Init(cam.Position(), rayDir)
	for {
		hit := dda.Next()
		if dda.Flag&FlagFail != 0 || dda.Flag&FlagTooFar != 0 || dda.Flag&FlagOutside != 0 {
			return
		}
		if dda.Flag&FlagHit == 0 {
			if r.CoversBand(rhStart, rhEnd-1) {
				return
			}
			continue
		}

		entryLocal := localEntry(hit, rayDir)
		walls := s.Walls(s.TileID(hit.TileX, hit.TileY))
		if len(walls) == 0 {
			continue
		}

		camDotRay := rayDir.Dot(cam.Direction())
		cands := make([]candidate, 0, len(walls))
		for _, w := range walls {
			p, t, ok := intersect(entryLocal, rayDir, w.Func)
			if !ok {
				continue
			}
			cands = append(cands, candidate{
				wall:     w,
				local:    p,
				perpDist: camDotRay * (hit.Distance + t),
			})
		}
		if len(cands) == 0 {
			if r.CoversBand(rhStart, rhEnd-1) {
				return
			}
			continue
		}

		sort.SliceStable(cands, func(i, j int) bool {
			return cands[i].perpDist < cands[j].perpDist
		})

		blocked := false
		for _, c := range cands {
			w := c.wall
			lineH := float64(renderH) * pcm / c.perpDist

			yTopF := float64(renderY) + (float64(renderH)-lineH)/2 + lineH*(1-w.HMax)
			yBotF := float64(renderY) + (float64(renderH)+lineH)/2 - lineH*w.HMin

			// Flip the outward normal to face the camera.
			a := w.Func.Slope
			coef := 1 / math.Sqrt(a*a+1)
			normal := geom.Vec2{X: a * coef, Y: -coef}
			flipped := false
			if cam.Position().Y >= a*(cam.Position().X-float64(hit.TileX))+float64(hit.TileY)+w.Func.Height {
				normal = normal.Scale(-1)
				flipped = true
			}

			u := 0.0
			if w.Length != 0 {
				u = c.local.Sub(w.Pivot).Magnitude() / w.Length
			}
			if flipped {
				u = 1 - u
			}

			yTopClamped := math.Max(yTopF, float64(rhStart))
			yBotClamped := math.Min(yBotF, float64(rhEnd))

			var tex *texture.Texture
			if w.TexID != 0 {
				tex = s.Texture(w.TexID)
			}

			if yBotClamped > yTopClamped {
				start := int(yTopClamped)
				end := int(yBotClamped)
				// ClipSpan works in inclusive [a,b] row coordinates.
				effStart, effEnd, jumps, visible := r.ClipSpan(start, end-1)

				if visible {
					span := yBotF - yTopF
					y := effStart
					for y <= effEnd {
						for _, j := range jumps {
							if j.A >= y && j.A < y+rowInterval {
								y = j.B
							}
						}
						if y > effEnd {
							break
						}

						var px color.NRGBA
						if tex != nil && tex.Usable() {
							v := 1 - (float64(y)-yTopF)/span
							px = tex.GetCoords(u, v)
						} else {
							px = w.Tint
						}

						if light.Enabled {
							perc := (1 - normal.Dot(light.Dir)) / 2
							bn := minBrightness + (1-minBrightness)*perc
							px.R = scaleChannel(px.R, bn)
							px.G = scaleChannel(px.G, bn)
							px.B = scaleChannel(px.B, bn)
						}

						for cx := 0; cx < columnsPerRay; cx++ {
							hx := column + cx
							if hx < 0 || hx >= screenW {
								break
							}
							for cy := 0; cy < rowInterval; cy++ {
								hy := y + cy
								if hy < 0 || hy >= screenH {
									break
								}
								out.SetPixel(hx, hy, px)
							}
						}

						y += rowInterval
					}
				}
				r.Insert(start, end-1)
			}

			if w.BlocksRay {
				blocked = true
				break
			}
		}
		if blocked {
			return
		}
		if r.CoversBand(rhStart, rhEnd-1) {
			return
		}
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	scaled := float64(v) * factor
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
