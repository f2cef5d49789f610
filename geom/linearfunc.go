package geom

// LinearFunc is a line `y = slope*x + height` clipped to a domain/range box.
// Walls express their top-down shape this way, in a tile's local [0,1]^2
// coordinates.
type LinearFunc struct {
	Slope, Height          float64
	XMin, XMax, YMin, YMax float64
}

// NewLinearFunc builds a clipped line. The domain and range bounds are used
// exactly as given; no defaults are substituted.
func NewLinearFunc(slope, height, xMin, xMax, yMin, yMax float64) LinearFunc {
	return LinearFunc{
		Slope: slope, Height: height,
		XMin: xMin, XMax: xMax,
		YMin: yMin, YMax: yMax,
	}
}

// Eval evaluates the unclipped line at x.
func (f LinearFunc) Eval(x float64) float64 {
	return f.Slope*x + f.Height
}

// Endpoint returns where the line, clipped to [YMin,YMax], crosses x — or,
// if y(x) falls outside the range, the point where the line instead crosses
// the nearest range bound.
//
// The slope=0 case is degenerate: the whole line sits at y=Height for every
// x, so there's nothing to recover by solving for x against a range bound.
func (f LinearFunc) Endpoint(x float64) Vec2 {
	if f.Slope == 0 {
		return Vec2{X: x, Y: f.Height}
	}
	y := f.Eval(x)
	switch {
	case y < f.YMin:
		return Vec2{X: (f.YMin - f.Height) / f.Slope, Y: f.YMin}
	case y > f.YMax:
		return Vec2{X: (f.YMax - f.Height) / f.Slope, Y: f.YMax}
	default:
		return Vec2{X: x, Y: y}
	}
}
