// Package export renders meetings for sharing outside the app.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/borgmon/meeting-notes/pkg/models"
)

// dateLayout matches the long en-US form the browser app exported.
const dateLayout = "January 2, 2006 3:04 PM"

// noteRuleWidth is the width of the rule under the Notes heading.
const noteRuleWidth = 50

// Text renders a meeting as a human-readable plain-text report.
func Text(m *models.Meeting, users []*models.User) string {
	var b strings.Builder

	b.WriteString(m.Title + "\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(m.Title)) + "\n\n")

	writeField(&b, "Start", formatDate(m.Date))
	writeField(&b, "End", formatDate(m.EndDate))
	writeField(&b, "Location", m.Location)
	writeField(&b, "Attendees", strings.Join(models.AttendeeNames(m, users), ", "))
	writeField(&b, "Tags", m.Tags)
	b.WriteString("\n")

	if len(m.Notes) > 0 {
		b.WriteString("Notes:\n")
		b.WriteString(strings.Repeat("─", noteRuleWidth) + "\n\n")
		for _, n := range m.Notes {
			if n.IsActionItem {
				b.WriteString("⚡ [ACTION ITEM] ")
			}
			b.WriteString("[" + formatNoteTime(n.Timestamp) + "] " + n.Content + "\n\n")
		}
	}
	return b.String()
}

// writeField emits a "Label: value" line, skipping empty values.
func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label + ": " + value + "\n")
}

func formatDate(local string) string {
	t, err := time.ParseInLocation(models.DateTimeLayout, local, time.Local)
	if err != nil {
		return local
	}
	return t.Format(dateLayout)
}

func formatNoteTime(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("3:04 PM")
}

// nonAlnum matches every character replaced in suggested filenames.
var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename suggests a download filename derived from the meeting title,
// with a time-derived suffix to keep repeated exports distinct.
func Filename(title, ext string, now time.Time) string {
	name := strings.ToLower(nonAlnum.ReplaceAllString(title, "_"))
	return fmt.Sprintf("%s_%d.%s", name, now.UnixMilli(), ext)
}
