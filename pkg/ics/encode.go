// Package ics encodes meetings as single-event iCalendar documents and
// decodes such documents back, best effort.
package ics

import (
	"strings"
	"time"

	"github.com/borgmon/meeting-notes/pkg/models"
)

const (
	prodID      = "-//Meeting Notes//EN"
	uidDomain   = "meetingnotes"
	stampLayout = "20060102T150405"
)

// Encode renders a meeting as a single-event calendar document with
// CRLF line endings.
func Encode(m *models.Meeting, users []*models.User, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + m.ID + "@" + uidDomain,
		"DTSTAMP:" + now.UTC().Format(stampLayout) + "Z",
		"DTSTART:" + icsDateTime(m.Date, now),
		"DTEND:" + icsDateTime(m.EndDate, now),
		"SUMMARY:" + escapeText(m.Title),
	}
	if desc := description(m.Notes); desc != "" {
		lines = append(lines, "DESCRIPTION:"+desc)
	}
	if m.Location != "" {
		lines = append(lines, "LOCATION:"+escapeText(m.Location))
	}
	lines = append(lines, attendeeLines(m, users)...)
	lines = append(lines, "END:VEVENT", "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

// icsDateTime converts a local YYYY-MM-DDTHH:MM string to the basic
// iCalendar form by dropping separators. No timezone conversion is
// performed; the Z suffix mirrors what the original exports carried.
func icsDateTime(local string, now time.Time) string {
	if local == "" {
		return now.Format(stampLayout) + "Z"
	}
	v := strings.NewReplacer("-", "", ":", "").Replace(local)
	if len(v) == 13 { // minute precision input
		v += "00"
	}
	if strings.HasSuffix(v, "Z") {
		return v
	}
	return v + "Z"
}

// description joins the notes with a literal \n\n sequence, prefixing
// action items.
func description(notes []*models.Note) string {
	if len(notes) == 0 {
		return ""
	}
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		text := escapeText(n.Content)
		if n.IsActionItem {
			text = "[ACTION] " + text
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, `\n\n`)
}

// attendeeLines emits one ATTENDEE line per resolved roster user, or
// falls back to the legacy free-text list without mailto targets.
func attendeeLines(m *models.Meeting, users []*models.User) []string {
	resolved := models.ResolveAttendees(m, users)
	if len(resolved) > 0 {
		lines := make([]string, 0, len(resolved))
		for _, u := range resolved {
			lines = append(lines, "ATTENDEE;CN="+escapeText(u.Name)+":mailto:"+u.Email)
		}
		return lines
	}

	if strings.TrimSpace(m.Attendees) == "" {
		return nil
	}
	var lines []string
	for _, part := range strings.Split(m.Attendees, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		lines = append(lines, "ATTENDEE:CN="+escapeText(name))
	}
	return lines
}
