package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"cvcanvas/internal/render"
	"cvcanvas/internal/scene"
)

// PixelRatio is the supersampling multiplier applied when rasterizing for
// download, for print-quality output.
const PixelRatio = 2.0

// PNG rasterizes the scene to PNG bytes at PixelRatio scale. The grid
// overlay and any selection frame are excluded, and the scene is read
// only: exporting has no observable side effect on editor state.
func PNG(surface *render.Surface, sc *scene.Scene) ([]byte, error) {
	return EncodePNG(surface.Rasterize(sc, PixelRatio))
}

// EncodePNG encodes an already-rendered image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
