package codec

import (
	"encoding/json"
	"fmt"

	"cvcanvas/internal/domain"
	"cvcanvas/internal/scene"
)

// ─────────────────────────────────────────────────────────────
// Persistence Codec — DesignDocument ⇄ (Scene, ViewState)
// ─────────────────────────────────────────────────────────────

// Serialize snapshots a scene and view into a storage-ready document.
// The result holds copies only; it stays valid however the scene mutates
// afterwards, and serializing never touches the scene.
func Serialize(sc *scene.Scene, view domain.ViewState) domain.DesignDocument {
	return domain.DesignDocument{
		Elements: sc.Elements(),
		Canvas: domain.Canvas{
			Width:  sc.Width(),
			Height: sc.Height(),
			Zoom:   view.Zoom,
		},
	}
}

// Deserialize reconstructs an equivalent scene and view from a document:
// same elements, same paint order, same field values, same zoom and page
// size. Selection is a session boundary, not a document property, so the
// returned view pairs with an idle selection and a hidden grid.
func Deserialize(doc domain.DesignDocument) (*scene.Scene, domain.ViewState) {
	sc := scene.NewWithSize(doc.Canvas.Width, doc.Canvas.Height)
	for _, el := range doc.Elements {
		sc.Append(el)
	}
	zoom := doc.Canvas.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}
	return sc, domain.ViewState{Zoom: zoom}
}

// Marshal encodes a document as JSON.
func Marshal(doc domain.DesignDocument) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal design document: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a stored JSON document.
func Unmarshal(data []byte) (domain.DesignDocument, error) {
	var doc domain.DesignDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.DesignDocument{}, fmt.Errorf("parse design document: %w", err)
	}
	return doc, nil
}
