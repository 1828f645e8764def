package scene

import (
	"testing"

	"cvcanvas/internal/domain"
)

func TestAppend_AssignsUniqueIDs(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		el := s.Append(domain.Element{Type: domain.ElementRectangle, Width: 10, Height: 10})
		if el.ID == "" {
			t.Fatal("expected generated ID")
		}
		if seen[el.ID] {
			t.Fatalf("duplicate ID %s", el.ID)
		}
		seen[el.ID] = true
	}
}

func TestAppend_TopOfPaintOrder(t *testing.T) {
	s := New()
	a := s.Append(domain.Element{Type: domain.ElementRectangle})
	b := s.Append(domain.Element{Type: domain.ElementCircle})

	els := s.Elements()
	if len(els) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(els))
	}
	if els[0].ID != a.ID || els[1].ID != b.ID {
		t.Errorf("paint order wrong: got [%s %s]", els[0].ID, els[1].ID)
	}

	// Deleting and re-adding puts the element back on top.
	s.Remove(a.ID)
	a2 := s.Append(domain.Element{Type: domain.ElementRectangle})
	els = s.Elements()
	if els[len(els)-1].ID != a2.ID {
		t.Errorf("re-added element not on top of paint order")
	}
}

func TestAppend_MarksDraggable(t *testing.T) {
	s := New()
	el := s.Append(domain.Element{Type: domain.ElementText, Text: "hi"})
	if !el.Draggable {
		t.Error("appended element should be draggable")
	}
}

func TestUpdate_MissingIDIsNoOp(t *testing.T) {
	s := New()
	el := s.Append(domain.Element{Type: domain.ElementRectangle, X: 10, Y: 20, Width: 30, Height: 40})

	if s.Update("nope", Patch{X: Float(99)}) {
		t.Error("update of missing ID should report false")
	}
	got, _ := s.Find(el.ID)
	if got.X != 10 || got.Y != 20 {
		t.Errorf("unrelated element mutated: (%v, %v)", got.X, got.Y)
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	s := New()
	el := s.Append(domain.Element{
		Type: domain.ElementText, X: 5, Y: 6,
		Text: "before", Fill: "#000000", FontSize: 14,
	})

	if !s.Update(el.ID, Patch{Fill: String("#112233"), FontSize: Float(18)}) {
		t.Fatal("update failed")
	}
	got, ok := s.Find(el.ID)
	if !ok {
		t.Fatal("element vanished")
	}
	if got.Fill != "#112233" || got.FontSize != 18 {
		t.Errorf("patch not applied: fill=%s size=%v", got.Fill, got.FontSize)
	}
	if got.Text != "before" || got.X != 5 {
		t.Errorf("untouched fields changed: text=%q x=%v", got.Text, got.X)
	}
}

func TestRemove(t *testing.T) {
	s := New()
	a := s.Append(domain.Element{Type: domain.ElementRectangle})
	b := s.Append(domain.Element{Type: domain.ElementCircle, Radius: 7})

	if !s.Remove(a.ID) {
		t.Fatal("remove failed")
	}
	if s.Remove(a.ID) {
		t.Error("double remove should report false")
	}
	got, ok := s.Find(b.ID)
	if !ok || got.Radius != 7 {
		t.Error("removing one element disturbed another")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 element, got %d", s.Len())
	}
}

func TestNewWithSize_Fallback(t *testing.T) {
	s := NewWithSize(0, -1)
	if s.Width() != domain.PageWidth || s.Height() != domain.PageHeight {
		t.Errorf("expected standard page, got %vx%v", s.Width(), s.Height())
	}
}

func TestElements_ReturnsCopy(t *testing.T) {
	s := New()
	el := s.Append(domain.Element{Type: domain.ElementRectangle, X: 1})
	els := s.Elements()
	els[0].X = 999
	got, _ := s.Find(el.ID)
	if got.X != 1 {
		t.Error("Elements() exposed internal storage")
	}
}
