package tui

import (
	"strings"

	"github.com/MKhiriev/go-dream-journal/models"
)

func renderDreamDetail(d models.Dream, deletable bool) string {
	var b strings.Builder

	b.WriteString("Author:   " + valueOrDash(d.OwnerName()) + "\n")
	b.WriteString("Date:     " + valueOrDash(d.DateEvent) + "\n")
	b.WriteString("Location: " + valueOrDash(d.Location) + "\n")
	if d.Lucidity != nil {
		b.WriteString("Lucidity: " + d.Lucidity.String() + "\n")
	}
	if d.Importance != nil {
		b.WriteString("Importance: " + d.Importance.String() + "\n")
	}
	if bool(d.IsPublic) {
		b.WriteString("Public\n")
	}

	b.WriteString("\n")
	if bool(d.IsSpoiler) {
		b.WriteString("(spoiler)\n")
	}
	b.WriteString(valueOrDash(d.Body))

	for _, extra := range []struct{ label, value string }{
		{"Interpretation", string(d.Interpretation)},
		{"Opinion", string(d.Opinion)},
		{"People", string(d.People)},
	} {
		if strings.TrimSpace(extra.value) == "" {
			continue
		}
		b.WriteString("\n\n" + extra.label + ":\n" + extra.value)
	}

	hotKeys := "c: copy  esc: back"
	if deletable {
		hotKeys = "c: copy  d: delete  esc: back"
	}
	return renderPage(valueOrDash(d.Title), b.String(), hotKeys)
}
