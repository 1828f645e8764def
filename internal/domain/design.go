package domain

// A4 proportion at the nominal 72-dpi scale. The seed layout arithmetic
// assumes this page size; the two must change together.
const (
	PageWidth  = 595.0
	PageHeight = 842.0
)

// Canvas carries the fixed page dimensions plus the saved zoom.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Zoom   float64 `json:"zoom"`
}

// DesignDocument is the storage-ready form of a scene. It is a plain
// structural snapshot with no references into live editor state, safe to
// round-trip through JSON storage. Selection is a session property and is
// never part of the document.
type DesignDocument struct {
	Elements []Element `json:"elements"`
	Canvas   Canvas    `json:"canvas"`
}

// ViewState holds the paint-time-only view transform. Neither field ever
// touches stored element coordinates.
type ViewState struct {
	Zoom     float64 `json:"zoom"`
	ShowGrid bool    `json:"showGrid"`
}
