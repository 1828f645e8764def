package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"cvcanvas/internal/domain"
	"cvcanvas/internal/scene"
)

// ─────────────────────────────────────────────────────────────
// Render Surface — paint-only projection of scene + selection + view
// ─────────────────────────────────────────────────────────────

const (
	// GridSpacing is the distance between alignment guides, in page units.
	GridSpacing = 20.0

	pageColor      = "#ffffff"
	gridColor      = "#e5e7eb"
	fallbackFill   = "#1e1e1e"
	selectionColor = "#2563eb"

	selectionPad = 2.0
	handleSize   = 6.0
	lineSpacing  = 1.3
)

// Surface rasterizes scenes. It holds no scene state of its own: every
// Render call is a pure function of its arguments, and nothing here ever
// writes back into the scene.
type Surface struct {
	fonts *fontCache
}

// NewSurface creates a surface with the embedded fonts parsed and ready.
func NewSurface() (*Surface, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &Surface{fonts: fonts}, nil
}

// Render paints the scene for the screen: zoom applied as a uniform scale
// of the whole surface, grid per the view state, and a manipulation frame
// around the selected element (pass "" when idle). The frame is derived
// from the element's current geometry on every call, so it tracks the
// element through any mutation with no re-binding step.
func (r *Surface) Render(sc *scene.Scene, selectedID string, view domain.ViewState) image.Image {
	zoom := view.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}
	return r.paint(sc, selectedID, zoom, view.ShowGrid)
}

// Rasterize paints the scene for export: grid and selection excluded,
// scaled by the given supersampling factor.
func (r *Surface) Rasterize(sc *scene.Scene, scale float64) image.Image {
	if scale <= 0 {
		scale = 1.0
	}
	return r.paint(sc, "", scale, false)
}

func (r *Surface) paint(sc *scene.Scene, selectedID string, scale float64, showGrid bool) image.Image {
	w := int(math.Ceil(sc.Width() * scale))
	h := int(math.Ceil(sc.Height() * scale))
	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)

	dc.SetHexColor(pageColor)
	dc.DrawRectangle(0, 0, sc.Width(), sc.Height())
	dc.Fill()

	if showGrid {
		r.drawGrid(dc, sc.Width(), sc.Height())
	}

	for _, el := range sc.Elements() {
		r.drawElement(dc, el)
	}

	if selectedID != "" {
		if el, ok := sc.Find(selectedID); ok {
			r.drawSelectionFrame(dc, el)
		}
	}

	return dc.Image()
}

// drawGrid paints the alignment guides under all elements.
func (r *Surface) drawGrid(dc *gg.Context, width, height float64) {
	dc.SetHexColor(gridColor)
	dc.SetLineWidth(1)
	for x := GridSpacing; x < width; x += GridSpacing {
		dc.DrawLine(x, 0, x, height)
		dc.Stroke()
	}
	for y := GridSpacing; y < height; y += GridSpacing {
		dc.DrawLine(0, y, width, y)
		dc.Stroke()
	}
}

func (r *Surface) drawElement(dc *gg.Context, el domain.Element) {
	fill := el.Fill
	if fill == "" {
		fill = fallbackFill
	}
	dc.SetHexColor(fill)

	switch el.Type {
	case domain.ElementRectangle:
		dc.DrawRectangle(el.X, el.Y, el.Width, el.Height)
		dc.Fill()
	case domain.ElementCircle:
		dc.DrawCircle(el.X, el.Y, el.Radius)
		dc.Fill()
	case domain.ElementText:
		size := el.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		dc.SetFontFace(r.fonts.face(el.FontFamily, size))
		// Stored Y is the top of the text box; gg draws from the baseline.
		if el.Width > 0 {
			dc.DrawStringWrapped(el.Text, el.X, el.Y+size, 0, 0, el.Width, lineSpacing, gg.AlignLeft)
		} else {
			dc.DrawString(el.Text, el.X, el.Y+size)
		}
	}
}

// drawSelectionFrame paints the manipulation affordance: a dashed bounding
// box with square resize handles at the corners and edge midpoints.
func (r *Surface) drawSelectionFrame(dc *gg.Context, el domain.Element) {
	b := el.Bounds()
	x, y := b.X-selectionPad, b.Y-selectionPad
	w, h := b.W+selectionPad*2, b.H+selectionPad*2

	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()
	dc.SetDash()

	for _, p := range handlePoints(x, y, w, h) {
		dc.SetHexColor(pageColor)
		dc.DrawRectangle(p[0]-handleSize/2, p[1]-handleSize/2, handleSize, handleSize)
		dc.Fill()
		dc.SetHexColor(selectionColor)
		dc.DrawRectangle(p[0]-handleSize/2, p[1]-handleSize/2, handleSize, handleSize)
		dc.Stroke()
	}
}

func handlePoints(x, y, w, h float64) [8][2]float64 {
	return [8][2]float64{
		{x, y}, {x + w/2, y}, {x + w, y},
		{x, y + h/2}, {x + w, y + h/2},
		{x, y + h}, {x + w/2, y + h}, {x + w, y + h},
	}
}
