package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"cvcanvas/internal/codec"
	"cvcanvas/internal/domain"
	"cvcanvas/internal/editor"
	"cvcanvas/internal/export"
	"cvcanvas/internal/render"
	"cvcanvas/internal/scene"
	"cvcanvas/internal/seed"
	"cvcanvas/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Design Service — business logic for CV design documents
// ─────────────────────────────────────────────────────────────

// ErrNoOpenDesign is returned by operations that need an open design.
var ErrNoOpenDesign = errors.New("no design open")

// DesignService manages design documents: creation, seeding from resume
// data, editing through a session, persistence, and export. At most one
// design is open at a time. The session and scene are single-threaded;
// the mutex serializes the callers that reach them (MCP handlers, the
// autosave tick, the resume watcher).
type DesignService struct {
	designs *storage.DesignStore
	snaps   *storage.SnapshotStore
	surface *render.Surface
	emitter EventEmitter

	mu       sync.Mutex
	designID string
	name     string
	session  *editor.Session
}

// NewDesignService creates a DesignService.
func NewDesignService(
	designs *storage.DesignStore,
	snaps *storage.SnapshotStore,
	surface *render.Surface,
	emitter EventEmitter,
) *DesignService {
	return &DesignService{
		designs: designs,
		snaps:   snaps,
		surface: surface,
		emitter: emitter,
	}
}

// ── Lifecycle ──────────────────────────────────────────────

// NewDesign creates and opens a blank design.
func (s *DesignService) NewDesign(ctx context.Context, name string) (*storage.DesignRecord, error) {
	return s.createAndOpen(ctx, name, scene.New())
}

// NewFromResume parses resume JSON, seeds a scene from it, and opens the
// result as a new design.
func (s *DesignService) NewFromResume(ctx context.Context, name, resumeJSON, colorScheme string) (*storage.DesignRecord, error) {
	var r domain.Resume
	if err := json.Unmarshal([]byte(resumeJSON), &r); err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}
	sc := seed.Build(r, seed.Options{ColorScheme: colorScheme})
	return s.createAndOpen(ctx, name, sc)
}

func (s *DesignService) createAndOpen(ctx context.Context, name string, sc *scene.Scene) (*storage.DesignRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := editor.NewSession(sc)
	docJSON, err := documentJSON(sess)
	if err != nil {
		return nil, err
	}

	rec := &storage.DesignRecord{
		ID:           uuid.New().String(),
		Name:         name,
		DocumentJSON: docJSON,
	}
	if err := s.designs.CreateDesign(rec); err != nil {
		return nil, fmt.Errorf("create design: %w", err)
	}

	s.designID = rec.ID
	s.name = rec.Name
	s.session = sess
	s.emitter.Emit(ctx, "design:opened", rec.ID)
	return rec, nil
}

// OpenDesign loads a stored design and makes it the open one. Any
// unsaved changes to the previously open design are discarded.
func (s *DesignService) OpenDesign(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.designs.GetDesign(id)
	if err != nil {
		return err
	}
	doc, err := codec.Unmarshal([]byte(rec.DocumentJSON))
	if err != nil {
		return fmt.Errorf("open design %s: %w", id, err)
	}

	sc, view := codec.Deserialize(doc)
	sess := editor.NewSession(sc)
	sess.SetZoom(view.Zoom)

	s.designID = rec.ID
	s.name = rec.Name
	s.session = sess
	s.emitter.Emit(ctx, "design:opened", rec.ID)
	return nil
}

// SaveDesign writes the open design's current document back to storage.
func (s *DesignService) SaveDesign(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	docJSON, err := documentJSON(s.session)
	if err != nil {
		return err
	}
	rec := &storage.DesignRecord{
		ID:           s.designID,
		Name:         s.name,
		DocumentJSON: docJSON,
	}
	if err := s.designs.UpdateDesign(rec); err != nil {
		return fmt.Errorf("save design: %w", err)
	}
	s.emitter.Emit(ctx, "design:saved", s.designID)
	return nil
}

// ListDesigns returns all stored designs.
func (s *DesignService) ListDesigns() ([]storage.DesignRecord, error) {
	return s.designs.ListDesigns()
}

// DeleteDesign removes a stored design. Deleting the open design also
// closes it.
func (s *DesignService) DeleteDesign(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.designs.DeleteDesign(id); err != nil {
		return err
	}
	if id == s.designID {
		s.designID = ""
		s.name = ""
		s.session = nil
	}
	s.emitter.Emit(ctx, "design:deleted", id)
	return nil
}

// OpenDesignID returns the ID of the open design, or false when none is.
func (s *DesignService) OpenDesignID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.designID, s.session != nil
}

// ── Editing ────────────────────────────────────────────────

// AddElement appends an element to the open design and selects it.
func (s *DesignService) AddElement(ctx context.Context, el domain.Element) (domain.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.Element{}, ErrNoOpenDesign
	}
	stored := s.session.Add(el)
	s.emitter.Emit(ctx, "design:changed", s.designID)
	s.emitter.Emit(ctx, "selection:changed", stored.ID)
	return stored, nil
}

// SelectElement makes the element with the given ID the selection.
func (s *DesignService) SelectElement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	if !s.session.Select(id) {
		return fmt.Errorf("element %s not found", id)
	}
	s.emitter.Emit(ctx, "selection:changed", id)
	return nil
}

// ClearSelection returns the session to idle.
func (s *DesignService) ClearSelection(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	s.session.ClearSelection()
	s.emitter.Emit(ctx, "selection:changed", "")
	return nil
}

// Selection returns the selected element ID, or false when idle.
func (s *DesignService) Selection() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return "", false
	}
	return s.session.Selection()
}

// MoveElement commits a new position for the selected element.
func (s *DesignService) MoveElement(ctx context.Context, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	if !s.session.MoveTo(x, y) {
		return errors.New("no element selected")
	}
	s.emitter.Emit(ctx, "design:changed", s.designID)
	return nil
}

// ResizeElement applies a new bounding box to the selected element.
func (s *DesignService) ResizeElement(ctx context.Context, w, h float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	if !s.session.Resize(w, h) {
		return fmt.Errorf("resize to %.1fx%.1f rejected", w, h)
	}
	s.emitter.Emit(ctx, "design:changed", s.designID)
	return nil
}

// SetElementProperty mutates one named field on the selected element.
func (s *DesignService) SetElementProperty(ctx context.Context, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	if !s.session.SetProperty(field, value) {
		return fmt.Errorf("cannot set property %q", field)
	}
	s.emitter.Emit(ctx, "design:changed", s.designID)
	return nil
}

// DeleteElement removes the selected element.
func (s *DesignService) DeleteElement(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	if !s.session.Delete() {
		return errors.New("no element selected")
	}
	s.emitter.Emit(ctx, "design:changed", s.designID)
	s.emitter.Emit(ctx, "selection:changed", "")
	return nil
}

// ListElements returns the open design's elements in paint order.
func (s *DesignService) ListElements() ([]domain.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoOpenDesign
	}
	return s.session.Scene().Elements(), nil
}

// ── View state ─────────────────────────────────────────────

// SetZoom clamps and applies a zoom level, returning the applied value.
func (s *DesignService) SetZoom(ctx context.Context, z float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return 0, ErrNoOpenDesign
	}
	applied := s.session.SetZoom(z)
	s.emitter.Emit(ctx, "view:changed", applied)
	return applied, nil
}

// SetGrid toggles the alignment grid overlay.
func (s *DesignService) SetGrid(ctx context.Context, show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	s.session.SetGrid(show)
	s.emitter.Emit(ctx, "view:changed", show)
	return nil
}

// ── Render / Export ────────────────────────────────────────

// RenderPNG rasterizes the current viewport, including grid and
// selection chrome, as PNG bytes.
func (s *DesignService) RenderPNG() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoOpenDesign
	}
	selected, _ := s.session.Selection()
	img := s.surface.Render(s.session.Scene(), selected, s.session.View())
	return export.EncodePNG(img)
}

// ExportPNG produces the final high-resolution artifact with no editor
// chrome.
func (s *DesignService) ExportPNG() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoOpenDesign
	}
	return export.PNG(s.surface, s.session.Scene())
}

// ── Snapshots ──────────────────────────────────────────────

// Snapshot records a point-in-time copy of the open design's document.
func (s *DesignService) Snapshot(ctx context.Context, label string) (*storage.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoOpenDesign
	}
	docJSON, err := documentJSON(s.session)
	if err != nil {
		return nil, err
	}
	snap, err := s.snaps.PushSnapshot(s.designID, uuid.New().String(), label, docJSON)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "design:snapshot", snap.ID)
	return snap, nil
}

// ListSnapshots returns the open design's snapshots, oldest first.
func (s *DesignService) ListSnapshots() ([]storage.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoOpenDesign
	}
	return s.snaps.ListSnapshots(s.designID)
}

// RestoreLatestSnapshot replaces the open design's scene with the most
// recent snapshot. A design with no snapshots is left untouched.
func (s *DesignService) RestoreLatestSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoOpenDesign
	}
	snap, err := s.snaps.LatestSnapshot(s.designID)
	if err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("design %s has no snapshots", s.designID)
	}
	doc, err := codec.Unmarshal([]byte(snap.DocumentJSON))
	if err != nil {
		return fmt.Errorf("restore snapshot %s: %w", snap.ID, err)
	}
	sc, view := codec.Deserialize(doc)
	sess := editor.NewSession(sc)
	sess.SetZoom(view.Zoom)
	s.session = sess
	s.emitter.Emit(ctx, "design:changed", s.designID)
	return nil
}

// ── helpers ────────────────────────────────────────────────

func documentJSON(sess *editor.Session) (string, error) {
	doc := codec.Serialize(sess.Scene(), sess.View())
	data, err := codec.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
