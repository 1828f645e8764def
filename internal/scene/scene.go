package scene

import (
	"fmt"
	"sync/atomic"
	"time"

	"cvcanvas/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Scene Model — ordered element container, single source of truth
// ─────────────────────────────────────────────────────────────

// Scene is the canonical representation of one editable page: an ordered
// sequence of elements where slice order is paint order (later elements
// paint on top). Element IDs are unique within a scene. Page dimensions are
// fixed for the lifetime of the document.
type Scene struct {
	width    float64
	height   float64
	elements []domain.Element
}

// New creates an empty scene with the standard page size.
func New() *Scene {
	return NewWithSize(domain.PageWidth, domain.PageHeight)
}

// NewWithSize creates an empty scene with explicit page dimensions.
// Zero or negative dimensions fall back to the standard page.
func NewWithSize(width, height float64) *Scene {
	if width <= 0 {
		width = domain.PageWidth
	}
	if height <= 0 {
		height = domain.PageHeight
	}
	return &Scene{width: width, height: height}
}

// Width returns the fixed page width.
func (s *Scene) Width() float64 { return s.width }

// Height returns the fixed page height.
func (s *Scene) Height() float64 { return s.height }

// Len returns the number of elements in the scene.
func (s *Scene) Len() int { return len(s.elements) }

// Append places el at the top of the paint order. An empty ID gets a fresh
// session-unique one. All user-manipulable elements are draggable.
func (s *Scene) Append(el domain.Element) domain.Element {
	if el.ID == "" {
		el.ID = NewElementID()
	}
	el.Draggable = true
	s.elements = append(s.elements, el)
	return el
}

// Remove deletes the element with the given ID. Returns false if no such
// element exists; other elements are never affected.
func (s *Scene) Remove(id string) bool {
	idx := s.index(id)
	if idx == -1 {
		return false
	}
	s.elements = append(s.elements[:idx], s.elements[idx+1:]...)
	return true
}

// Find returns a copy of the element with the given ID.
func (s *Scene) Find(id string) (domain.Element, bool) {
	idx := s.index(id)
	if idx == -1 {
		return domain.Element{}, false
	}
	return s.elements[idx], true
}

// Update applies a partial patch to the element with the given ID.
// Updating a missing ID is a no-op: UI events can race with deletion,
// and a stale mutation must never fail the caller.
func (s *Scene) Update(id string, patch Patch) bool {
	idx := s.index(id)
	if idx == -1 {
		return false
	}
	patch.apply(&s.elements[idx])
	return true
}

// Elements returns the elements in paint order. The slice is a copy;
// mutations go through Append/Remove/Update.
func (s *Scene) Elements() []domain.Element {
	out := make([]domain.Element, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *Scene) index(id string) int {
	for i := range s.elements {
		if s.elements[i].ID == id {
			return i
		}
	}
	return -1
}

// ── Patch ──────────────────────────────────────────────────

// Patch names the fields a single update may change. Nil pointers leave
// the field untouched.
type Patch struct {
	X          *float64
	Y          *float64
	Width      *float64
	Height     *float64
	Radius     *float64
	Text       *string
	Fill       *string
	FontSize   *float64
	FontFamily *string
}

func (p Patch) apply(el *domain.Element) {
	if p.X != nil {
		el.X = *p.X
	}
	if p.Y != nil {
		el.Y = *p.Y
	}
	if p.Width != nil {
		el.Width = *p.Width
	}
	if p.Height != nil {
		el.Height = *p.Height
	}
	if p.Radius != nil {
		el.Radius = *p.Radius
	}
	if p.Text != nil {
		el.Text = *p.Text
	}
	if p.Fill != nil {
		el.Fill = *p.Fill
	}
	if p.FontSize != nil {
		el.FontSize = *p.FontSize
	}
	if p.FontFamily != nil {
		el.FontFamily = *p.FontFamily
	}
}

// Float returns a pointer for use in a Patch literal.
func Float(v float64) *float64 { return &v }

// String returns a pointer for use in a Patch literal.
func String(v string) *string { return &v }

// ── ID generation ──────────────────────────────────────────

// elementIDCounter disambiguates IDs generated within the same millisecond.
var elementIDCounter atomic.Int64

// NewElementID returns a session-unique element ID.
func NewElementID() string {
	return fmt.Sprintf("el_%d_%d", time.Now().UnixMilli(), elementIDCounter.Add(1))
}
