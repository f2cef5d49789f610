package texture

import (
	"context"
	"errors"
	"image"

	"github.com/oov/downscale"
)

// GenerateThumbnail produces a box-filtered w×h downscale of t, for use as a
// minimap icon or an asset-browser preview. It refuses unusable textures
// rather than returning a blank image, since a thumbnail of a failed load
// would be indistinguishable from a legitimately blank texture.
func GenerateThumbnail(t *Texture, w, h int) (*image.RGBA, error) {
	if t == nil || !t.Usable() {
		return nil, errors.New("texture: cannot thumbnail an unusable texture")
	}
	if w <= 0 || h <= 0 {
		return nil, errors.New("texture: thumbnail dimensions must be positive")
	}

	src := image.NewRGBA(image.Rect(0, 0, t.Width(), t.Height()))
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			src.Set(x, t.Height()-1-y, t.GetPixelAt(x, y))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := downscale.RGBA(context.Background(), dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
