package editor

import (
	"cvcanvas/internal/domain"
	"cvcanvas/internal/scene"
)

// ─────────────────────────────────────────────────────────────
// Editor session — selection state machine + transform operations
// ─────────────────────────────────────────────────────────────

const (
	MinZoom = 0.1
	MaxZoom = 3.0

	// MinBoxSide is the smallest bounding box a resize may produce, in page
	// units. Smaller attempts are rejected and the prior box is retained.
	MinBoxSide = 5.0
)

// Session owns one scene for its lifetime and tracks the at-most-one
// selected element. All mutation goes through the session so the change
// log stays complete. Single event-loop discipline: nothing here is safe
// for concurrent use, and nothing needs to be.
type Session struct {
	scene    *scene.Scene
	selected string // element ID, "" = idle
	view     domain.ViewState
	log      *ChangeLog
}

// NewSession wraps a scene in a fresh session: nothing selected, zoom 1,
// grid hidden.
func NewSession(sc *scene.Scene) *Session {
	if sc == nil {
		sc = scene.New()
	}
	return &Session{
		scene: sc,
		view:  domain.ViewState{Zoom: 1.0},
		log:   NewChangeLog(changeLogCap),
	}
}

// Scene returns the session's scene.
func (s *Session) Scene() *scene.Scene { return s.scene }

// View returns the current view state.
func (s *Session) View() domain.ViewState { return s.view }

// Changes returns the recorded mutation commands, oldest first.
func (s *Session) Changes() []Command { return s.log.Commands() }

// ── Selection ──────────────────────────────────────────────

// Selection returns the selected element ID, or false when idle.
func (s *Session) Selection() (string, bool) {
	return s.selected, s.selected != ""
}

// Select makes the element with the given ID the selection, replacing any
// previous one directly. Selecting a missing ID is refused so the
// selection never dangles.
func (s *Session) Select(id string) bool {
	if _, ok := s.scene.Find(id); !ok {
		return false
	}
	s.selected = id
	return true
}

// ClearSelection returns to idle, e.g. on a click over empty canvas.
func (s *Session) ClearSelection() {
	s.selected = ""
}

// ── Mutations ──────────────────────────────────────────────

// Add appends an element to the scene and auto-selects it.
func (s *Session) Add(el domain.Element) domain.Element {
	stored := s.scene.Append(el)
	s.selected = stored.ID
	s.log.Record(OpAdd, stored.ID, stored)
	return stored
}

// SetProperty mutates one named field on the selected element. Available
// only while selected; unknown fields and stale selections are no-ops.
func (s *Session) SetProperty(field string, value any) bool {
	if s.selected == "" {
		return false
	}
	patch, ok := patchFor(field, value)
	if !ok {
		return false
	}
	if !s.scene.Update(s.selected, patch) {
		return false
	}
	s.log.Record(OpUpdate, s.selected, map[string]any{field: value})
	return true
}

// MoveTo commits the final position of a drag gesture. Intermediate
// pointer moves are the render surface's business and never reach the
// scene.
func (s *Session) MoveTo(x, y float64) bool {
	if s.selected == "" {
		return false
	}
	if !s.scene.Update(s.selected, scene.Patch{X: scene.Float(x), Y: scene.Float(y)}) {
		return false
	}
	s.log.Record(OpUpdate, s.selected, map[string]float64{"x": x, "y": y})
	return true
}

// Resize applies a new bounding box to the selected element. A box smaller
// than MinBoxSide on either side is rejected and the prior box survives.
// The box maps onto kind geometry: rectangle width/height, circle
// diameter, text wrap width.
func (s *Session) Resize(w, h float64) bool {
	if s.selected == "" {
		return false
	}
	el, ok := s.scene.Find(s.selected)
	if !ok {
		return false
	}

	var patch scene.Patch
	switch el.Type {
	case domain.ElementRectangle:
		if w < MinBoxSide || h < MinBoxSide {
			return false
		}
		patch = scene.Patch{Width: scene.Float(w), Height: scene.Float(h)}
	case domain.ElementCircle:
		d := w
		if h < d {
			d = h
		}
		if d < MinBoxSide {
			return false
		}
		patch = scene.Patch{Radius: scene.Float(d / 2)}
	case domain.ElementText:
		if w < MinBoxSide {
			return false
		}
		patch = scene.Patch{Width: scene.Float(w)}
	default:
		return false
	}

	if !s.scene.Update(s.selected, patch) {
		return false
	}
	s.log.Record(OpUpdate, s.selected, map[string]float64{"w": w, "h": h})
	return true
}

// Delete removes the selected element and forces the transition to idle.
// Deleting with a stale or empty selection is a no-op.
func (s *Session) Delete() bool {
	if s.selected == "" {
		return false
	}
	id := s.selected
	s.selected = ""
	if !s.scene.Remove(id) {
		return false
	}
	s.log.Record(OpDelete, id, nil)
	return true
}

// ── View state ─────────────────────────────────────────────

// SetZoom clamps z into [MinZoom, MaxZoom] and applies it. Zoom is a paint
// transform only; element coordinates are never rewritten.
func (s *Session) SetZoom(z float64) float64 {
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	s.view.Zoom = z
	return z
}

// SetGrid toggles the alignment grid overlay.
func (s *Session) SetGrid(show bool) {
	s.view.ShowGrid = show
}

// patchFor translates a named property mutation into a scene patch.
func patchFor(field string, value any) (scene.Patch, bool) {
	switch field {
	case "x", "y", "width", "height", "radius", "fontSize":
		f, ok := toFloat(value)
		if !ok {
			return scene.Patch{}, false
		}
		switch field {
		case "x":
			return scene.Patch{X: scene.Float(f)}, true
		case "y":
			return scene.Patch{Y: scene.Float(f)}, true
		case "width":
			return scene.Patch{Width: scene.Float(f)}, true
		case "height":
			return scene.Patch{Height: scene.Float(f)}, true
		case "radius":
			return scene.Patch{Radius: scene.Float(f)}, true
		default:
			return scene.Patch{FontSize: scene.Float(f)}, true
		}
	case "text", "fill", "fontFamily":
		str, ok := value.(string)
		if !ok {
			return scene.Patch{}, false
		}
		switch field {
		case "text":
			return scene.Patch{Text: scene.String(str)}, true
		case "fill":
			return scene.Patch{Fill: scene.String(str)}, true
		default:
			return scene.Patch{FontFamily: scene.String(str)}, true
		}
	}
	return scene.Patch{}, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
