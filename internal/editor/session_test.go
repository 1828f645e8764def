package editor

import (
	"testing"

	"cvcanvas/internal/domain"
	"cvcanvas/internal/scene"
)

func newSessionWithRect(t *testing.T) (*Session, domain.Element) {
	t.Helper()
	s := NewSession(scene.New())
	el := s.Add(domain.Element{
		Type: domain.ElementRectangle,
		X:    100, Y: 100, Width: 50, Height: 40,
		Fill: "#cccccc",
	})
	return s, el
}

func TestAdd_AutoSelects(t *testing.T) {
	s, el := newSessionWithRect(t)
	id, ok := s.Selection()
	if !ok || id != el.ID {
		t.Errorf("expected new element %s selected, got %q", el.ID, id)
	}
}

func TestSelect_ReplacesDirectly(t *testing.T) {
	s, a := newSessionWithRect(t)
	b := s.Add(domain.Element{Type: domain.ElementCircle, X: 10, Y: 10, Radius: 20})

	if !s.Select(a.ID) {
		t.Fatal("select failed")
	}
	if id, _ := s.Selection(); id != a.ID {
		t.Errorf("selected %q, want %q", id, a.ID)
	}
	if !s.Select(b.ID) {
		t.Fatal("reselect failed")
	}
	if id, _ := s.Selection(); id != b.ID {
		t.Errorf("selected %q, want %q", id, b.ID)
	}
}

func TestSelect_MissingIDRefused(t *testing.T) {
	s, el := newSessionWithRect(t)
	if s.Select("ghost") {
		t.Error("selecting a missing ID should fail")
	}
	if id, _ := s.Selection(); id != el.ID {
		t.Error("failed select must not disturb current selection")
	}
}

func TestDelete_ForcesIdle(t *testing.T) {
	s, el := newSessionWithRect(t)
	other := s.Add(domain.Element{Type: domain.ElementText, Text: "keep", X: 5, Y: 5, FontSize: 14})
	s.Select(el.ID)

	if !s.Delete() {
		t.Fatal("delete failed")
	}
	if _, ok := s.Selection(); ok {
		t.Error("selection must be idle after deleting the selected element")
	}
	if _, ok := s.Scene().Find(el.ID); ok {
		t.Error("element still present after delete")
	}
	got, ok := s.Scene().Find(other.ID)
	if !ok || got.Text != "keep" {
		t.Error("deleting one element changed another")
	}
	// Operations while idle are no-ops.
	if s.Delete() || s.MoveTo(1, 1) || s.SetProperty("fill", "#000") {
		t.Error("idle session must refuse mutations")
	}
}

func TestMoveTo_CommitsFinalPosition(t *testing.T) {
	s, el := newSessionWithRect(t)
	if !s.MoveTo(230, 310) {
		t.Fatal("move failed")
	}
	got, _ := s.Scene().Find(el.ID)
	if got.X != 230 || got.Y != 310 {
		t.Errorf("position (%v, %v), want (230, 310)", got.X, got.Y)
	}
}

func TestSetProperty(t *testing.T) {
	s, el := newSessionWithRect(t)

	if !s.SetProperty("fill", "#112233") {
		t.Fatal("set fill failed")
	}
	if !s.SetProperty("x", 42.0) {
		t.Fatal("set x failed")
	}
	if s.SetProperty("nope", 1.0) {
		t.Error("unknown field should be refused")
	}
	if s.SetProperty("fill", 7) {
		t.Error("wrong value type should be refused")
	}

	got, _ := s.Scene().Find(el.ID)
	if got.Fill != "#112233" || got.X != 42 {
		t.Errorf("got fill=%s x=%v", got.Fill, got.X)
	}
}

func TestResize_Floor(t *testing.T) {
	s, el := newSessionWithRect(t)

	if s.Resize(4, 60) {
		t.Error("resize below the 5x5 floor should be rejected")
	}
	got, _ := s.Scene().Find(el.ID)
	if got.Width != 50 || got.Height != 40 {
		t.Errorf("prior box not retained: %vx%v", got.Width, got.Height)
	}

	if !s.Resize(5, 5) {
		t.Error("exactly 5x5 is allowed")
	}
	got, _ = s.Scene().Find(el.ID)
	if got.Width != 5 || got.Height != 5 {
		t.Errorf("resize not applied: %vx%v", got.Width, got.Height)
	}
}

func TestResize_Circle(t *testing.T) {
	s := NewSession(scene.New())
	el := s.Add(domain.Element{Type: domain.ElementCircle, X: 50, Y: 50, Radius: 30})

	if s.Resize(4, 4) {
		t.Error("circle below floor should be rejected")
	}
	if !s.Resize(40, 60) {
		t.Fatal("resize failed")
	}
	got, _ := s.Scene().Find(el.ID)
	if got.Radius != 20 {
		t.Errorf("radius = %v, want 20 (half the smaller side)", got.Radius)
	}
}

func TestResize_TextWrapWidth(t *testing.T) {
	s := NewSession(scene.New())
	s.Add(domain.Element{Type: domain.ElementText, Text: "hello", Width: 200, FontSize: 14})

	if s.Resize(3, 100) {
		t.Error("text wrap below floor should be rejected")
	}
	if !s.Resize(120, 0) {
		t.Fatal("resize failed")
	}
	id, _ := s.Selection()
	got, _ := s.Scene().Find(id)
	if got.Width != 120 {
		t.Errorf("wrap width = %v, want 120", got.Width)
	}
}

func TestSetZoom_ClampAndNonDestructive(t *testing.T) {
	s, el := newSessionWithRect(t)
	before, _ := s.Scene().Find(el.ID)

	if z := s.SetZoom(0.01); z != MinZoom {
		t.Errorf("zoom clamped to %v, want %v", z, MinZoom)
	}
	if z := s.SetZoom(10); z != MaxZoom {
		t.Errorf("zoom clamped to %v, want %v", z, MaxZoom)
	}
	for _, z := range []float64{0.1, 0.5, 2.4, 3.0, 1.0} {
		s.SetZoom(z)
	}

	after, _ := s.Scene().Find(el.ID)
	if before != after {
		t.Errorf("zoom mutated element fields: %+v vs %+v", before, after)
	}
	if s.View().Zoom != 1.0 {
		t.Errorf("zoom = %v, want 1.0", s.View().Zoom)
	}
}

func TestChangeLog_RecordsCommands(t *testing.T) {
	s, el := newSessionWithRect(t)
	s.MoveTo(10, 20)
	s.SetProperty("fill", "#ff0000")
	s.Delete()

	cmds := s.Changes()
	if len(cmds) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(cmds))
	}
	wantOps := []string{OpAdd, OpUpdate, OpUpdate, OpDelete}
	for i, op := range wantOps {
		if cmds[i].Op != op {
			t.Errorf("command %d: op %s, want %s", i, cmds[i].Op, op)
		}
		if cmds[i].ElementID != el.ID {
			t.Errorf("command %d: element %s, want %s", i, cmds[i].ElementID, el.ID)
		}
	}
}

func TestChangeLog_Prunes(t *testing.T) {
	l := NewChangeLog(3)
	for i := 0; i < 10; i++ {
		l.Record(OpUpdate, "el", map[string]int{"i": i})
	}
	if l.Len() != 3 {
		t.Fatalf("expected 3 retained commands, got %d", l.Len())
	}
	cmds := l.Commands()
	if string(cmds[2].Payload) != `{"i":9}` {
		t.Errorf("newest command lost: %s", cmds[2].Payload)
	}
}
