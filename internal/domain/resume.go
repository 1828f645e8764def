package domain

import "encoding/json"

// Resume is the external CV record handed to the editor once at
// initialization. Every field is optional; absence of a field simply means
// no element is seeded for it.
type Resume struct {
	PersonalInfo *PersonalInfo `json:"personal_info,omitempty"`
	Sections     []Section     `json:"sections,omitempty"`
}

// PersonalInfo is the contact header of a resume.
type PersonalInfo struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Section is a titled list of resume items.
type Section struct {
	Title string        `json:"title"`
	Items []SectionItem `json:"items,omitempty"`
}

// SectionItemKind tags the shape of a section item.
type SectionItemKind string

const (
	ItemKindText   SectionItemKind = "text"
	ItemKindDetail SectionItemKind = "detail"
)

// SectionItem tolerates the heterogeneous item shapes resume records carry:
// a bare string, or an object with a declared type. Anything unrecognized
// falls back to the opaque-text variant so seeding never hard-fails.
type SectionItem struct {
	Kind   SectionItemKind `json:"kind"`
	Text   string          `json:"text,omitempty"`
	Label  string          `json:"label,omitempty"`  // detail items: "Acme Corp"
	Detail string          `json:"detail,omitempty"` // detail items: "Senior Engineer, 2020-2024"
}

// UnmarshalJSON accepts either a JSON string or an object form.
func (it *SectionItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*it = SectionItem{Kind: ItemKindText, Text: s}
		return nil
	}

	var obj struct {
		Kind   SectionItemKind `json:"kind"`
		Type   SectionItemKind `json:"type"`
		Text   string          `json:"text"`
		Label  string          `json:"label"`
		Detail string          `json:"detail"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unrecognized shape: keep it as opaque text rather than failing.
		*it = SectionItem{Kind: ItemKindText, Text: string(data)}
		return nil
	}

	kind := obj.Kind
	if kind == "" {
		kind = obj.Type
	}
	switch kind {
	case ItemKindDetail:
		*it = SectionItem{Kind: ItemKindDetail, Label: obj.Label, Detail: obj.Detail}
	default:
		*it = SectionItem{Kind: ItemKindText, Text: obj.Text}
	}
	return nil
}

// Display renders the item as the single line of text the canvas shows.
func (it SectionItem) Display() string {
	if it.Kind == ItemKindDetail {
		switch {
		case it.Label != "" && it.Detail != "":
			return it.Label + " — " + it.Detail
		case it.Label != "":
			return it.Label
		default:
			return it.Detail
		}
	}
	return it.Text
}
