package domain

// ElementType is the closed set of primitives the canvas supports.
type ElementType string

const (
	ElementText      ElementType = "text"
	ElementRectangle ElementType = "rectangle"
	ElementCircle    ElementType = "circle"
)

// Element is a single positioned primitive on the page canvas.
// One flat record covers all kinds; fields a kind doesn't use stay zero
// and are omitted from JSON. Positions are in page units, unscaled by zoom.
// For circles, X/Y is the center; for everything else it's the top-left.
type Element struct {
	ID         string      `json:"id"`
	Type       ElementType `json:"type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Width      float64     `json:"width,omitempty"`  // rectangle width; text wrap width (0 = no wrap)
	Height     float64     `json:"height,omitempty"` // rectangle only
	Radius     float64     `json:"radius,omitempty"` // circle only
	Text       string      `json:"text,omitempty"`
	Fill       string      `json:"fill"`
	FontSize   float64     `json:"fontSize,omitempty"`
	FontFamily string      `json:"fontFamily,omitempty"`
	Draggable  bool        `json:"draggable"`
}

// Rect is an axis-aligned bounding box in page units.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two boxes overlap.
func (a Rect) Intersects(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Bounds returns the element's bounding box. Text height is estimated from
// the font size; the render surface measures the real thing at paint time.
func (e *Element) Bounds() Rect {
	switch e.Type {
	case ElementRectangle:
		return Rect{e.X, e.Y, e.Width, e.Height}
	case ElementCircle:
		return Rect{e.X - e.Radius, e.Y - e.Radius, e.Radius * 2, e.Radius * 2}
	case ElementText:
		size := e.FontSize
		if size <= 0 {
			size = 16
		}
		w := e.Width
		if w <= 0 {
			w = 0.6 * size * float64(len(e.Text))
		}
		return Rect{e.X, e.Y, w, size * 1.2}
	}
	return Rect{X: e.X, Y: e.Y}
}
