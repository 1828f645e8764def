package seed

import (
	"testing"

	"cvcanvas/internal/domain"
)

func sampleResume() domain.Resume {
	return domain.Resume{
		PersonalInfo: &domain.PersonalInfo{
			FullName: "Alice Lee",
			Email:    "alice@x.com",
		},
		Sections: []domain.Section{
			{Title: "Skills", Items: []domain.SectionItem{
				{Kind: domain.ItemKindText, Text: "Python"},
				{Kind: domain.ItemKindText, Text: "Go"},
			}},
		},
	}
}

func TestBuild_FixedOffsetLayout(t *testing.T) {
	sc := Build(sampleResume(), Options{})
	els := sc.Elements()

	if len(els) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(els))
	}

	want := []struct {
		text string
		y    float64
	}{
		{"Alice Lee", 50},
		{"alice@x.com", 100},
		{"Skills", 240},
		{"Python", 280},
		{"Go", 310},
	}
	for i, w := range want {
		if els[i].Text != w.text {
			t.Errorf("element %d: text %q, want %q", i, els[i].Text, w.text)
		}
		if els[i].Y != w.y {
			t.Errorf("element %d (%s): y=%v, want %v", i, w.text, els[i].Y, w.y)
		}
		if els[i].X != 50 {
			t.Errorf("element %d: x=%v, want 50", i, els[i].X)
		}
		if els[i].Type != domain.ElementText {
			t.Errorf("element %d: type %s, want text", i, els[i].Type)
		}
	}
}

func TestBuild_ContactOffsetIgnoresRowCount(t *testing.T) {
	// All three contact rows present: the post-block advance is still 100,
	// so the first section heading lands at the same y as with one row.
	r := sampleResume()
	r.PersonalInfo.Phone = "555-0100"
	r.PersonalInfo.Location = "Lisbon"

	sc := Build(r, Options{})
	els := sc.Elements()
	if len(els) != 7 {
		t.Fatalf("expected 7 elements, got %d", len(els))
	}
	// name, email(100), phone(125), location(150), then heading
	if els[1].Y != 100 || els[2].Y != 125 || els[3].Y != 150 {
		t.Errorf("contact rows at %v/%v/%v, want 100/125/150", els[1].Y, els[2].Y, els[3].Y)
	}
	if els[4].Text != "Skills" || els[4].Y != 240 {
		t.Errorf("heading at y=%v, want 240", els[4].Y)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(sampleResume(), Options{ColorScheme: "blue"}).Elements()
	b := Build(sampleResume(), Options{ColorScheme: "blue"}).Elements()

	if len(a) != len(b) {
		t.Fatalf("element counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		x, y := a[i], b[i]
		// IDs are freshly generated; everything else must match.
		x.ID, y.ID = "", ""
		if x != y {
			t.Errorf("element %d differs between runs: %+v vs %+v", i, x, y)
		}
	}
}

func TestBuild_ColorScheme(t *testing.T) {
	neutral := Build(sampleResume(), Options{}).Elements()
	blue := Build(sampleResume(), Options{ColorScheme: "blue"}).Elements()

	// Headings (name + section title) take the accent only under "blue".
	if neutral[0].Fill == blue[0].Fill {
		t.Error("name fill should differ between schemes")
	}
	if blue[0].Fill != accentBlue || blue[2].Fill != accentBlue {
		t.Errorf("blue scheme headings: got %s / %s", blue[0].Fill, blue[2].Fill)
	}
	// Body text is muted gray under every scheme.
	if neutral[1].Fill != bodyGray || blue[1].Fill != bodyGray {
		t.Errorf("contact fill: got %s / %s, want %s", neutral[1].Fill, blue[1].Fill, bodyGray)
	}
}

func TestBuild_EmptyResume(t *testing.T) {
	sc := Build(domain.Resume{}, Options{})
	if sc.Len() != 0 {
		t.Errorf("empty resume should seed an empty scene, got %d elements", sc.Len())
	}
}

func TestBuild_SummaryWraps(t *testing.T) {
	r := domain.Resume{PersonalInfo: &domain.PersonalInfo{
		Summary: "Seasoned engineer with a decade of distributed systems work.",
	}}
	sc := Build(r, Options{})
	els := sc.Elements()
	if len(els) != 1 {
		t.Fatalf("expected 1 element, got %d", len(els))
	}
	if els[0].Width != 500 {
		t.Errorf("summary wrap width = %v, want 500", els[0].Width)
	}
	// No name and no contacts: summary still sits below the fixed contact offset.
	if els[0].Y != 150 {
		t.Errorf("summary y = %v, want 150", els[0].Y)
	}
}

func TestBuild_DetailItems(t *testing.T) {
	r := domain.Resume{Sections: []domain.Section{{
		Title: "Experience",
		Items: []domain.SectionItem{
			{Kind: domain.ItemKindDetail, Label: "Acme", Detail: "Engineer"},
		},
	}}}
	sc := Build(r, Options{})
	els := sc.Elements()
	if len(els) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(els))
	}
	if els[1].Text != "Acme — Engineer" {
		t.Errorf("detail item text = %q", els[1].Text)
	}
}
