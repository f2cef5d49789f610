package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// LoadFile decodes a PNG file into a Texture. The decoded image is
// normalised to NRGBA (straight alpha) before pixels are copied out, so
// palette and grayscale PNGs sample the same way as true-colour ones.
func LoadFile(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		conv := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(conv, conv.Bounds(), img, bounds.Min, draw.Src)
		nrgba = conv
	}

	pix := make([]color.NRGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = nrgba.NRGBAAt(x, y)
		}
	}
	return New(w, h, pix), nil
}
