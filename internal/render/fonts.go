package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSize is used when an element carries no font size.
const defaultFontSize = 16.0

type faceKey struct {
	bold bool
	size float64
}

// fontCache parses the embedded TTFs once and hands out faces per
// (weight, size). Faces are cached because truetype.NewFace allocates
// rasterizer state on every call.
type fontCache struct {
	regular *truetype.Font
	bold    *truetype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

func newFontCache() (*fontCache, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	boldFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &fontCache{
		regular: regular,
		bold:    boldFont,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// face returns a font face for the element's family and size. Any family
// naming a bold weight maps to the bold face; everything else renders with
// the regular face.
func (c *fontCache) face(family string, size float64) font.Face {
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{bold: strings.Contains(strings.ToLower(family), "bold"), size: size}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[key]; ok {
		return f
	}

	ttf := c.regular
	if key.bold {
		ttf = c.bold
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = f
	return f
}
