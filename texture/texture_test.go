package texture

import (
	"image/color"
	"testing"
)

func checkerTexture(w, h int) *Texture {
	pix := make([]color.NRGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Row 0 is the top row in storage order.
			pix[y*w+x] = color.NRGBA{R: uint8(x), G: uint8(y), B: 0, A: 255}
		}
	}
	return New(w, h, pix)
}

func TestGetPixelAtOriginIsBottomLeft(t *testing.T) {
	tex := checkerTexture(4, 4)
	// Storage row 0 (top) holds y=height-1 in bottom-left addressing.
	top := tex.GetPixelAt(2, 3)
	if top.G != 0 {
		t.Fatalf("GetPixelAt(2,3): got G=%d, want 0 (top row)", top.G)
	}
	bottom := tex.GetPixelAt(2, 0)
	if bottom.G != 3 {
		t.Fatalf("GetPixelAt(2,0): got G=%d, want 3 (bottom row)", bottom.G)
	}
}

func TestGetCoordsRoundTrip(t *testing.T) {
	tex := checkerTexture(8, 5)
	for _, uv := range [][2]float64{{0, 0}, {0.25, 0.5}, {0.99, 0.99}} {
		u, v := uv[0], uv[1]
		got := tex.GetCoords(u, v)
		want := tex.GetPixelAt(int(u*float64(tex.Width())), int(v*float64(tex.Height())))
		if got != want {
			t.Fatalf("GetCoords(%v,%v): got %v, want %v", u, v, got, want)
		}
	}
}

func TestGetCoordsWraps(t *testing.T) {
	tex := checkerTexture(4, 4)
	a := tex.GetCoords(0.1, 0.1)
	b := tex.GetCoords(1.1, 2.1)
	if a != b {
		t.Fatalf("GetCoords should wrap integer part: got %v and %v", a, b)
	}
}

func TestUnusableTextureReturnsError(t *testing.T) {
	tex := NewFailed(errNotFound)
	if tex.Usable() {
		t.Fatal("NewFailed texture should not be usable")
	}
	if tex.GetPixelAt(0, 0) != (color.NRGBA{}) {
		t.Fatal("GetPixelAt on failed texture should return transparent black")
	}
}

var errNotFound = fakeErr("not found")

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
