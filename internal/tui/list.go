package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-dream-journal/models"
)

const (
	listTitleWidth = 40
	listOwnerWidth = 20
)

// dreamRow is the single-line rendition of a dream inside a list.
func dreamRow(d models.Dream, withOwner bool) string {
	title := d.Title
	if strings.TrimSpace(title) == "" {
		title = fitText(firstLine(d.Body), listTitleWidth)
	}
	row := fmt.Sprintf("%-*s", listTitleWidth, fitText(valueOrDash(title), listTitleWidth))
	if withOwner {
		row += "  " + fitText(valueOrDash(d.OwnerName()), listOwnerWidth)
	}
	if d.DateEvent != "" {
		row += "  " + d.DateEvent
	}
	return row
}

func renderDreamList(items []models.Dream, cursor int, withOwner bool) string {
	if len(items) == 0 {
		return "no dreams yet"
	}

	var b strings.Builder
	for i, d := range items {
		prefix := "  "
		line := dreamRow(d, withOwner)
		if i == cursor {
			prefix = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(prefix)
		b.WriteString(line)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// author is an entry of the people list.
type author struct {
	name   string
	dreams int
}

// authorsOf groups public dreams by owner name. Dreams without a name are
// not listed. The result is ordered by dream count, then by name.
func authorsOf(items []models.Dream) []author {
	counts := make(map[string]int)
	for _, d := range items {
		if name := strings.TrimSpace(d.OwnerName()); name != "" {
			counts[name]++
		}
	}

	out := make([]author, 0, len(counts))
	for name, n := range counts {
		out = append(out, author{name: name, dreams: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dreams != out[j].dreams {
			return out[i].dreams > out[j].dreams
		}
		return out[i].name < out[j].name
	})
	return out
}

func renderAuthorList(authors []author, cursor int) string {
	if len(authors) == 0 {
		return "nobody has shared a dream yet"
	}

	var b strings.Builder
	for i, a := range authors {
		prefix := "  "
		line := fmt.Sprintf("%-*s  %d", listOwnerWidth, fitText(a.name, listOwnerWidth), a.dreams)
		if i == cursor {
			prefix = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(prefix)
		b.WriteString(line)
		if i < len(authors)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
