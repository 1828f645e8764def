package render

import (
	"bytes"
	"image/png"
	"reflect"
	"testing"

	"cvcanvas/internal/domain"
	"cvcanvas/internal/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New()
	sc.Append(domain.Element{Type: domain.ElementRectangle, X: 50, Y: 60, Width: 200, Height: 120, Fill: "#112233"})
	sc.Append(domain.Element{Type: domain.ElementCircle, X: 400, Y: 300, Radius: 40, Fill: "#2563eb"})
	sc.Append(domain.Element{Type: domain.ElementText, X: 50, Y: 400, Text: "Alice Lee", Fill: "#111827", FontSize: 32})
	return sc
}

func encode(t *testing.T, sc *scene.Scene, selectedID string, view domain.ViewState) []byte {
	t.Helper()
	surface, err := NewSurface()
	if err != nil {
		t.Fatal(err)
	}
	img := surface.Render(sc, selectedID, view)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRender_PageDimensions(t *testing.T) {
	surface, err := NewSurface()
	if err != nil {
		t.Fatal(err)
	}
	img := surface.Render(testScene(t), "", domain.ViewState{Zoom: 1})
	b := img.Bounds()
	if b.Dx() != 595 || b.Dy() != 842 {
		t.Errorf("image %dx%d, want 595x842", b.Dx(), b.Dy())
	}
}

func TestRender_ZoomScalesSurfaceOnly(t *testing.T) {
	sc := testScene(t)
	before := sc.Elements()

	surface, err := NewSurface()
	if err != nil {
		t.Fatal(err)
	}
	img := surface.Render(sc, "", domain.ViewState{Zoom: 2})
	b := img.Bounds()
	if b.Dx() != 1190 || b.Dy() != 1684 {
		t.Errorf("image %dx%d, want 1190x1684", b.Dx(), b.Dy())
	}
	if !reflect.DeepEqual(before, sc.Elements()) {
		t.Error("rendering with zoom mutated element fields")
	}
}

func TestRender_GridChangesOutput(t *testing.T) {
	sc := testScene(t)
	plain := encode(t, sc, "", domain.ViewState{Zoom: 1})
	grid := encode(t, sc, "", domain.ViewState{Zoom: 1, ShowGrid: true})
	if bytes.Equal(plain, grid) {
		t.Error("grid overlay had no visible effect")
	}
}

func TestRender_SelectionFrameChangesOutput(t *testing.T) {
	sc := testScene(t)
	id := sc.Elements()[0].ID

	plain := encode(t, sc, "", domain.ViewState{Zoom: 1})
	selected := encode(t, sc, id, domain.ViewState{Zoom: 1})
	if bytes.Equal(plain, selected) {
		t.Error("selection frame had no visible effect")
	}

	// A stale selection ID paints nothing extra.
	stale := encode(t, sc, "ghost", domain.ViewState{Zoom: 1})
	if !bytes.Equal(plain, stale) {
		t.Error("stale selection should render as idle")
	}
}

func TestRender_SelectionFrameTracksElement(t *testing.T) {
	sc := testScene(t)
	id := sc.Elements()[0].ID

	before := encode(t, sc, id, domain.ViewState{Zoom: 1})
	sc.Update(id, scene.Patch{X: scene.Float(300)})
	after := encode(t, sc, id, domain.ViewState{Zoom: 1})
	if bytes.Equal(before, after) {
		t.Error("frame did not follow the element after a move")
	}
}

func TestRender_Deterministic(t *testing.T) {
	sc := testScene(t)
	a := encode(t, sc, "", domain.ViewState{Zoom: 1, ShowGrid: true})
	b := encode(t, sc, "", domain.ViewState{Zoom: 1, ShowGrid: true})
	if !bytes.Equal(a, b) {
		t.Error("identical inputs produced different pixels")
	}
}

func TestRasterize_NoGridNoSelection(t *testing.T) {
	sc := testScene(t)
	surface, err := NewSurface()
	if err != nil {
		t.Fatal(err)
	}
	img := surface.Rasterize(sc, 2)
	b := img.Bounds()
	if b.Dx() != 1190 || b.Dy() != 1684 {
		t.Errorf("image %dx%d, want 1190x1684", b.Dx(), b.Dy())
	}
}
