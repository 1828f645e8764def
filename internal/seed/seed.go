package seed

import (
	"cvcanvas/internal/domain"
	"cvcanvas/internal/scene"
)

// ─────────────────────────────────────────────────────────────
// Seed/Import Adapter — resume record → initial scene
// ─────────────────────────────────────────────────────────────
//
// Layout is a single deterministic top-to-bottom pass with a vertical
// cursor. The offsets are fixed: the cursor always advances 100 after the
// contact block no matter how many of email/phone/location are present.

const (
	leftMargin = 50.0

	nameFontSize    = 32.0
	contactFontSize = 14.0
	headingFontSize = 20.0
	bodyFontSize    = 14.0

	bodyWrapWidth = 500.0
	contactRowGap = 25.0

	accentBlue = "#2563eb" // headings under the "blue" scheme
	headingInk = "#111827"
	bodyGray   = "#6b7280" // contacts and body text, any scheme
	fontFamily = "sans"
)

// Options configures a seeding pass. Passed explicitly; there is no
// package-level configuration state.
type Options struct {
	// ColorScheme is the document's named color scheme. Only "blue"
	// switches headings to the accent color.
	ColorScheme string
}

// Build maps a resume record into an initial scene. Every input field is
// optional; missing fields simply emit nothing. Calling Build twice with
// the same record yields scenes identical up to freshly generated IDs.
func Build(r domain.Resume, opts Options) *scene.Scene {
	sc := scene.New()
	heading := headingInk
	if opts.ColorScheme == "blue" {
		heading = accentBlue
	}

	y := 50.0

	if pi := r.PersonalInfo; pi != nil {
		if pi.FullName != "" {
			sc.Append(textElement(pi.FullName, leftMargin, y, nameFontSize, heading, 0))
			y += 50
		}

		row := 0
		for _, contact := range []string{pi.Email, pi.Phone, pi.Location} {
			if contact == "" {
				continue
			}
			sc.Append(textElement(contact, leftMargin, y+contactRowGap*float64(row), contactFontSize, bodyGray, 0))
			row++
		}
		// Fixed offset regardless of how many contact rows were emitted.
		y += 100

		if pi.Summary != "" {
			sc.Append(textElement(pi.Summary, leftMargin, y, bodyFontSize, bodyGray, bodyWrapWidth))
			y += 100
		}
	}

	for _, sec := range r.Sections {
		y += 40
		if sec.Title != "" {
			sc.Append(textElement(sec.Title, leftMargin, y, headingFontSize, heading, 0))
		}
		y += 40
		for _, item := range sec.Items {
			sc.Append(textElement(item.Display(), leftMargin, y, bodyFontSize, bodyGray, bodyWrapWidth))
			y += 30
		}
		y += 20
	}

	return sc
}

func textElement(text string, x, y, size float64, fill string, wrap float64) domain.Element {
	return domain.Element{
		Type:       domain.ElementText,
		X:          x,
		Y:          y,
		Width:      wrap,
		Text:       text,
		Fill:       fill,
		FontSize:   size,
		FontFamily: fontFamily,
	}
}
